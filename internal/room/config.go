package room

// Projection, matching the headset eye frustum.
const (
	FieldOfView = 70.0 // vertical, degrees
	ZNear       = 0.01
	ZFar        = 20.0
)

// Room geometry (world units). The player walks along Z between the two
// end walls; the locomotion bounds keep the eye inside this box.
const (
	RoomHalfWidth = 3.0
	RoomHeight    = 6.0
	RoomNearZ     = -4.0 // the wall the player faces at start
	RoomFarZ      = 9.0
	FloorHeight   = -3.0
)

// Targets.
const (
	TargetCount    = 6
	TargetSize     = 0.35
	TargetOffset   = 1.6 // from the room axis
	TargetBobSpeed = 1.3 // rad/s
	TargetBobRange = 0.15
)

// Distance walked between footstep sounds.
const StepSoundDistance = 0.6

// Mouse-look head emulation.
const (
	MouseSensitivity = 0.0025 // radians per cursor pixel
	MaxHeadPitch     = 85.0   // degrees
)
