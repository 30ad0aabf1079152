package utils

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown remove toda a formatação markdown e devolve texto puro.
func StripMarkdown(texto string) string {
	if texto == "" {
		return ""
	}

	doc := markdown.Parse([]byte(texto), nil)

	var buf bytes.Buffer
	extrairTexto(doc, &buf)

	resultado := strings.TrimSpace(buf.String())
	resultado = strings.ReplaceAll(resultado, "\n\n\n", "\n\n")

	return resultado
}

// ResumirMarkdown devolve o texto puro truncado em limite runas, com
// reticências quando houve corte. As quebras de linha viram espaços para o
// resumo caber em uma linha de card.
func ResumirMarkdown(texto string, limite int) string {
	puro := StripMarkdown(texto)
	puro = strings.Join(strings.Fields(puro), " ")

	if limite <= 0 || utf8.RuneCountInString(puro) <= limite {
		return puro
	}

	runas := []rune(puro)
	cortado := strings.TrimRight(string(runas[:limite]), " ")
	return cortado + "…"
}

// extrairTexto percorre a AST acumulando apenas o conteúdo textual.
func extrairTexto(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock:
		return

	case *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, filho := range container.Children {
		extrairTexto(filho, buf)
	}

	switch node.(type) {
	case *ast.Paragraph:
		buf.WriteString("\n\n")
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List:
		buf.WriteString("\n")
	case *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
