package usecase

import (
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removerArquivo apaga um upload órfão, em melhor esforço: o registro
// já saiu do banco, um resíduo em disco não deve falhar a operação.
func removerArquivo(caminho string) {
	if caminho == "" {
		return
	}
	_ = os.Remove(caminho)
}

// nomeArquivo reduz um nome livre (de membro, de carta) a um identificador
// seguro para nome de arquivo: sem acentos, minúsculo, só [a-z0-9_].
func nomeArquivo(base string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	semAcentos, _, err := transform.String(t, base)
	if err != nil {
		semAcentos = base
	}
	var b strings.Builder
	for _, r := range strings.ToLower(semAcentos) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "documento"
	}
	return s
}
