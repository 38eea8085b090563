// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ObjectVertexShader transforms lit scene objects.
//
//go:embed object.vert
var ObjectVertexShader string

// ObjectFragmentShader shades scene objects with Phong lighting.
//
//go:embed object.frag
var ObjectFragmentShader string

// SkyboxVertexShader projects the sky cube onto the far plane.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader samples the sky cubemap.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
