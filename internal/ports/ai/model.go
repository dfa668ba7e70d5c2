package ai

import (
	"context"
	"errors"
)

var (
	// ErrQuota: el proveedor rechazó por cuota o rate limit (HTTP 429).
	ErrQuota = errors.New("ai quota exceeded")

	// ErrNotConfigured: no hay API key; los servicios degradan a textos fijos.
	ErrNotConfigured = errors.New("ai model not configured")
)

// Part es un trozo del prompt: texto o un binario inline (ej. frame JPEG en base64).
type Part struct {
	Text       string
	InlineData *Blob
}

type Blob struct {
	MIMEType string
	Data     string // base64
}

// Param describe un parámetro string de una tool.
type Param struct {
	Name        string
	Description string
	Enum        []string
	Required    bool
}

// Tool es una función que el modelo puede pedir que ejecutemos.
type Tool struct {
	Name        string
	Description string
	Params      []Param
}

type Request struct {
	// Vision usa el modelo con soporte de imágenes.
	Vision bool
	Parts  []Part
	Tools  []Tool
}

func TextRequest(prompt string) Request {
	return Request{Parts: []Part{{Text: prompt}}}
}

type FunctionCall struct {
	Name string
	Args map[string]string
}

type Response struct {
	Text  string
	Calls []FunctionCall
}

// Model es el colaborador externo: prompt adentro, texto o llamadas a funciones afuera.
// Sin reintentos: un error se loguea y se reemplaza por un texto fijo.
type Model interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
