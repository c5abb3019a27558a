//go:build !android

package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Scene vertex shader: unit cube with per-face normals.
const sceneVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;
uniform float uNormalSign; // -1 for the room, lit from inside

out vec3 vNormal;
out vec3 vLocal;

void main() {
    vNormal = normalize(mat3(uModel) * aNormal) * uNormalSign;
    vLocal = aPos;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
` + "\x00"

// Scene fragment shader: flat colour, one directional light, grid lines on
// the room so walking is visible.
const sceneFragSrc = `#version 410 core

uniform vec3 uColor;
uniform float uAmbient;
uniform vec3 uLightDir;
uniform float uHighlight;
uniform float uGrid;

in vec3 vNormal;
in vec3 vLocal;
out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
    vec3 c = uColor * (uAmbient + (1.0 - uAmbient) * diffuse);
    if (uGrid > 0.0) {
        vec3 g = abs(fract(vLocal * uGrid + 0.5) - 0.5);
        float line = step(min(min(g.x, g.y), g.z), 0.01);
        c *= 1.0 - 0.35 * line;
    }
    FragColor = vec4(c + vec3(uHighlight), 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
