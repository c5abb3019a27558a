package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundStep SoundKind = iota
	SoundBump
	SoundPick
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.5

// activeSteps limits overlapping footsteps when walking fast.
var activeSteps int32

// stepVariant alternates left and right feet.
var stepVariant uint64

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if kind == SoundStep {
		if atomic.LoadInt32(&activeSteps) >= 2 {
			return
		}
		atomic.AddInt32(&activeSteps, 1)
	}
	samples := generateSound(kind)
	go func() {
		if kind == SoundStep {
			defer atomic.AddInt32(&activeSteps, -1)
		}
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

func putStereoF32(buf []byte, i int, sample float64) {
	putStereoF32LR(buf, i, sample, sample)
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundStep:
		return genStep(atomic.AddUint64(&stepVariant, 1))
	case SoundBump:
		return genBump()
	case SoundPick:
		return genPick()
	}
	return nil
}

// genStep: muffled heel thump plus a short scuff, panned to one foot.
func genStep(variant uint64) []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	seed := variant*0x9E3779B97F4A7C15 + 1
	pan := 0.35
	if variant%2 == 0 {
		pan = -pan
	}
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.0, 0.1)
		thump := math.Sin(2*math.Pi*(95-40*p)*t) * env * 0.55
		lp += (lcg(&seed) - lp) * 0.12
		scuff := lp * adsr(p, 0.05, 0.3, 0.0, 0.2) * 0.25
		s := softSat(thump + scuff)
		putStereoF32LR(buf, i, s*(1-pan), s*(1+pan))
	}
	return buf
}

// genBump: low dull thud when the player reaches a wall.
func genBump() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.05, 0.3)
		freq := 70 - 25*p
		s := fm(t, freq, 0.5, 1.8*(1-p)) * env * 0.7
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPick: two-note FM bell, the second ringing over the first.
func genPick() []byte {
	notes := []float64{880, 1318.51}
	noteStep := int(0.07 * SampleRate)
	total := len(notes)*noteStep + int(0.3*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.6, 0.05, 0.3)
			s := fm(t, freq, 3.5, 4.5*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.06
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
