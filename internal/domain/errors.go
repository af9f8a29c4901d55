package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado           = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado    = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado       = errors.New("o e-mail já está cadastrado")
	ErrEntradaInvalida         = errors.New("entrada inválida")
	ErrDuplicado               = errors.New("registro duplicado")
	ErrNaoAutorizado           = errors.New("não autorizado")
	ErrAcessoNegado            = errors.New("acesso negado")
	ErrConflito                = errors.New("conflito com o estado atual")
	ErrTipoFinanceiroInvalido  = errors.New("tipo deve ser 'Entrada' ou 'Saída'")
	ErrTokenExpirado           = errors.New("link inválido ou expirado")
	ErrSetupJaRealizado        = errors.New("já existe um administrador configurado")
)
