// Package shader compiles the scene's GLSL programs and sets their uniforms.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("could not create program object")
	}
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return 0, fmt.Errorf("%s shader: could not create shader object", name)
	}
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return "no info log"
	}
	buf := make([]byte, length)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Program is a linked shader program.
type Program struct {
	id uint32
}

func newProgram(vertexSrc, fragmentSrc, name string) (Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return Program{}, fmt.Errorf("%s program: %w", name, err)
	}
	return Program{id: id}, nil
}

// ID returns the GL program name.
func (p Program) ID() uint32 {
	return p.id
}

// Use makes the program current.
func (p Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program.
func (p Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
}

func (p Program) uniform(name string) int32 {
	return GetUniform(p.id, name)
}
