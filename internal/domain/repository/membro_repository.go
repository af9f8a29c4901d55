package repository

import (
	"context"
	"time"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// FiltroMembros filtros do relatório estatístico de membros.
type FiltroMembros struct {
	Sexo        string
	Status      string
	EstadoCivil string
	Funcao      string
}

// FiltroAniversariantes filtros da listagem de aniversariantes.
type FiltroAniversariantes struct {
	Mes       int // 1–12; obrigatório (o chamador aplica o mês corrente)
	Funcao    string
	DiaInicio int
	DiaFim    int
}

// Distribuicao par (rótulo, contagem) de um group-by.
type Distribuicao struct {
	Rotulo string
	Total  int
}

// MembroRepository define a persistência de membros e visitantes.
type MembroRepository interface {
	Create(ctx context.Context, m *entity.Membro) error
	GetByID(ctx context.Context, id string) (*entity.Membro, error)
	Update(ctx context.Context, m *entity.Membro) error
	Delete(ctx context.Context, id string) error

	// List pagina ordenado por nome; devolve também o total para a paginação.
	List(ctx context.Context, limit, offset int) ([]*entity.Membro, int, error)
	// Search faz substring case-insensitive sobre nome, e-mail e função.
	Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Membro, int, error)

	// Detecção de duplicidade no cadastro interno.
	FindByCPF(ctx context.Context, cpf string) (*entity.Membro, error)
	FindByNomeENascimento(ctx context.Context, nome string, nascimento time.Time) (*entity.Membro, error)
	// FindVisitanteDuplicado casa (nome E telefone) OU e-mail (quando informado).
	FindVisitanteDuplicado(ctx context.Context, nome, telefone, email string) (*entity.Membro, error)

	// Aniversariantes do mês, ordenados pelo dia do nascimento.
	Aniversariantes(ctx context.Context, f FiltroAniversariantes, limit, offset int) ([]*entity.Membro, int, error)

	// Relatório estatístico.
	ListFiltered(ctx context.Context, f FiltroMembros) ([]*entity.Membro, error)
	DistribuicaoPor(ctx context.Context, coluna string, f FiltroMembros) ([]Distribuicao, error)
	Funcoes(ctx context.Context) ([]string, error)

	// Emails devolve os e-mails não vazios dos membros (lembretes de evento).
	Emails(ctx context.Context) ([]string, error)
}
