package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
	"github.com/soarespaullo/SiGI/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory dos repositórios, compartilhados pelos testes do pacote
// ──────────────────────────────────────────────────────────────────────────────

// novoRegistrador monta um registrador de auditoria sobre o fake de logs.
func novoRegistrador(logs *fakeLogRepo) *auditoria.Registrador {
	return auditoria.NewRegistrador(logs, logger.New(logger.Config{Env: "development", Level: "error"}))
}

type fakeLogRepo struct {
	entradas []*entity.Log
}

func (r *fakeLogRepo) Create(_ context.Context, l *entity.Log) error {
	r.entradas = append(r.entradas, l)
	return nil
}

func (r *fakeLogRepo) List(_ context.Context, usuario string, limit, offset int) ([]*entity.Log, int, error) {
	var filtrados []*entity.Log
	for _, l := range r.entradas {
		if usuario == "" || strings.Contains(strings.ToLower(l.Usuario), strings.ToLower(usuario)) {
			filtrados = append(filtrados, l)
		}
	}
	total := len(filtrados)
	if offset >= total {
		return nil, total, nil
	}
	fim := offset + limit
	if fim > total {
		fim = total
	}
	return filtrados[offset:fim], total, nil
}

func (r *fakeLogRepo) DeleteOlderThan(_ context.Context, corte time.Time) (int64, error) {
	var mantidas []*entity.Log
	var removidas int64
	for _, l := range r.entradas {
		if l.Data.Before(corte) {
			removidas++
			continue
		}
		mantidas = append(mantidas, l)
	}
	r.entradas = mantidas
	return removidas, nil
}

func (r *fakeLogRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.entradas))
	r.entradas = nil
	return n, nil
}

// contemAcao informa se alguma entrada de auditoria contém o trecho.
func (r *fakeLogRepo) contemAcao(trecho string) bool {
	for _, l := range r.entradas {
		if strings.Contains(l.Acao, trecho) {
			return true
		}
	}
	return false
}

type fakeMembroRepo struct {
	membros map[string]*entity.Membro
}

func novoFakeMembroRepo() *fakeMembroRepo {
	return &fakeMembroRepo{membros: make(map[string]*entity.Membro)}
}

func (r *fakeMembroRepo) Create(_ context.Context, m *entity.Membro) error {
	r.membros[m.ID] = m
	return nil
}

func (r *fakeMembroRepo) GetByID(_ context.Context, id string) (*entity.Membro, error) {
	return r.membros[id], nil
}

func (r *fakeMembroRepo) Update(_ context.Context, m *entity.Membro) error {
	r.membros[m.ID] = m
	return nil
}

func (r *fakeMembroRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.membros[id]; !ok {
		return domain.ErrNaoEncontrado
	}
	delete(r.membros, id)
	return nil
}

func (r *fakeMembroRepo) ordenados() []*entity.Membro {
	out := make([]*entity.Membro, 0, len(r.membros))
	for _, m := range r.membros {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out
}

func (r *fakeMembroRepo) List(_ context.Context, limit, offset int) ([]*entity.Membro, int, error) {
	todos := r.ordenados()
	total := len(todos)
	if offset >= total {
		return nil, total, nil
	}
	fim := offset + limit
	if fim > total {
		fim = total
	}
	return todos[offset:fim], total, nil
}

func (r *fakeMembroRepo) Search(_ context.Context, termo string, limit, offset int) ([]*entity.Membro, int, error) {
	termo = strings.ToLower(termo)
	var achados []*entity.Membro
	for _, m := range r.ordenados() {
		if strings.Contains(strings.ToLower(m.Nome), termo) ||
			strings.Contains(strings.ToLower(m.Email), termo) ||
			strings.Contains(strings.ToLower(m.Funcao), termo) {
			achados = append(achados, m)
		}
	}
	total := len(achados)
	if offset >= total {
		return nil, total, nil
	}
	fim := offset + limit
	if fim > total {
		fim = total
	}
	return achados[offset:fim], total, nil
}

func (r *fakeMembroRepo) FindByCPF(_ context.Context, cpf string) (*entity.Membro, error) {
	for _, m := range r.membros {
		if m.CPF != "" && m.CPF == cpf {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMembroRepo) FindByNomeENascimento(_ context.Context, nome string, nascimento time.Time) (*entity.Membro, error) {
	for _, m := range r.membros {
		if strings.EqualFold(m.Nome, nome) && m.DataNascimento != nil && m.DataNascimento.Equal(nascimento) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMembroRepo) FindVisitanteDuplicado(_ context.Context, nome, telefone, email string) (*entity.Membro, error) {
	for _, m := range r.membros {
		if nome != "" && telefone != "" && strings.EqualFold(m.Nome, nome) && m.Telefone == telefone {
			return m, nil
		}
		if email != "" && strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMembroRepo) Aniversariantes(_ context.Context, f repository.FiltroAniversariantes, limit, offset int) ([]*entity.Membro, int, error) {
	var achados []*entity.Membro
	for _, m := range r.ordenados() {
		if m.DataNascimento == nil || int(m.DataNascimento.Month()) != f.Mes {
			continue
		}
		if f.Funcao != "" && m.Funcao != f.Funcao {
			continue
		}
		dia := m.DataNascimento.Day()
		if f.DiaInicio > 0 && dia < f.DiaInicio {
			continue
		}
		if f.DiaFim > 0 && dia > f.DiaFim {
			continue
		}
		achados = append(achados, m)
	}
	total := len(achados)
	if offset >= total {
		return nil, total, nil
	}
	fim := offset + limit
	if fim > total {
		fim = total
	}
	return achados[offset:fim], total, nil
}

func (r *fakeMembroRepo) ListFiltered(_ context.Context, f repository.FiltroMembros) ([]*entity.Membro, error) {
	var achados []*entity.Membro
	for _, m := range r.ordenados() {
		if f.Sexo != "" && m.Sexo != f.Sexo {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		if f.EstadoCivil != "" && m.EstadoCivil != f.EstadoCivil {
			continue
		}
		if f.Funcao != "" && m.Funcao != f.Funcao {
			continue
		}
		achados = append(achados, m)
	}
	return achados, nil
}

func (r *fakeMembroRepo) DistribuicaoPor(ctx context.Context, coluna string, f repository.FiltroMembros) ([]repository.Distribuicao, error) {
	list, _ := r.ListFiltered(ctx, f)
	contagem := make(map[string]int)
	for _, m := range list {
		var v string
		switch coluna {
		case "sexo":
			v = m.Sexo
		case "estado_civil":
			v = m.EstadoCivil
		case "funcao":
			v = m.Funcao
		case "status":
			v = m.Status
		}
		if v == "" {
			v = "Não informado"
		}
		contagem[v]++
	}
	rotulos := make([]string, 0, len(contagem))
	for k := range contagem {
		rotulos = append(rotulos, k)
	}
	sort.Strings(rotulos)
	out := make([]repository.Distribuicao, 0, len(rotulos))
	for _, k := range rotulos {
		out = append(out, repository.Distribuicao{Rotulo: k, Total: contagem[k]})
	}
	return out, nil
}

func (r *fakeMembroRepo) Emails(_ context.Context) ([]string, error) {
	var out []string
	for _, m := range r.ordenados() {
		if m.Email != "" {
			out = append(out, m.Email)
		}
	}
	return out, nil
}

func (r *fakeMembroRepo) Funcoes(_ context.Context) ([]string, error) {
	vistos := make(map[string]bool)
	var out []string
	for _, m := range r.membros {
		if m.Funcao != "" && !vistos[m.Funcao] {
			vistos[m.Funcao] = true
			out = append(out, m.Funcao)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeLinkRepo struct {
	links map[string]*entity.LinkPublico
}

func novoFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[string]*entity.LinkPublico)}
}

func (r *fakeLinkRepo) Create(_ context.Context, l *entity.LinkPublico) error {
	r.links[l.ID] = l
	return nil
}

func (r *fakeLinkRepo) GetAtivoPorTipo(_ context.Context, tipo string) (*entity.LinkPublico, error) {
	for _, l := range r.links {
		if l.Tipo == tipo && l.Ativo {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) GetByHash(_ context.Context, hash string) (*entity.LinkPublico, error) {
	for _, l := range r.links {
		if l.Hash == hash {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) Desativar(_ context.Context, id string) error {
	if l, ok := r.links[id]; ok {
		l.Ativo = false
	}
	return nil
}

type fakeEventoRepo struct {
	eventos map[string]*entity.Evento
	// tokensEmUso força colisões de token público no Create.
	tokensEmUso map[string]bool
}

func novoFakeEventoRepo() *fakeEventoRepo {
	return &fakeEventoRepo{eventos: make(map[string]*entity.Evento), tokensEmUso: make(map[string]bool)}
}

func (r *fakeEventoRepo) Create(_ context.Context, e *entity.Evento) error {
	if r.tokensEmUso[e.PublicToken] {
		return domain.ErrDuplicado
	}
	for _, outro := range r.eventos {
		if outro.PublicToken == e.PublicToken {
			return domain.ErrDuplicado
		}
	}
	copia := *e
	r.eventos[e.ID] = &copia
	return nil
}

func (r *fakeEventoRepo) GetByID(_ context.Context, id string) (*entity.Evento, error) {
	return r.eventos[id], nil
}

func (r *fakeEventoRepo) GetByPublicToken(_ context.Context, token string) (*entity.Evento, error) {
	for _, e := range r.eventos {
		if e.PublicToken == token {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEventoRepo) Update(_ context.Context, e *entity.Evento) error {
	copia := *e
	r.eventos[e.ID] = &copia
	return nil
}

func (r *fakeEventoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.eventos[id]; !ok {
		return domain.ErrNaoEncontrado
	}
	delete(r.eventos, id)
	return nil
}

func (r *fakeEventoRepo) lista() []*entity.Evento {
	out := make([]*entity.Evento, 0, len(r.eventos))
	for _, e := range r.eventos {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataInicio.Before(out[j].DataInicio) })
	return out
}

func (r *fakeEventoRepo) List(_ context.Context, limit, offset int) ([]*entity.Evento, int, error) {
	todos := r.lista()
	total := len(todos)
	if offset >= total {
		return nil, total, nil
	}
	fim := offset + limit
	if fim > total {
		fim = total
	}
	return todos[offset:fim], total, nil
}

func (r *fakeEventoRepo) Search(_ context.Context, termo string, limit, offset int) ([]*entity.Evento, int, error) {
	termo = strings.ToLower(termo)
	var achados []*entity.Evento
	for _, e := range r.lista() {
		if strings.Contains(strings.ToLower(e.Titulo), termo) ||
			strings.Contains(strings.ToLower(e.Tipo), termo) ||
			strings.Contains(strings.ToLower(e.Organizador), termo) {
			achados = append(achados, e)
		}
	}
	total := len(achados)
	if offset >= total {
		return nil, total, nil
	}
	fim := offset + limit
	if fim > total {
		fim = total
	}
	return achados[offset:fim], total, nil
}

func (r *fakeEventoRepo) Proximos(_ context.Context, de, ate time.Time) ([]*entity.Evento, error) {
	var out []*entity.Evento
	for _, e := range r.lista() {
		if e.Status == entity.EventoCancelado {
			continue
		}
		if !e.DataInicio.Before(de) && !e.DataInicio.After(ate) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventoRepo) ExisteProximoOuEmCurso(_ context.Context, agora, ate time.Time) (bool, error) {
	for _, e := range r.eventos {
		if e.Status == entity.EventoCancelado {
			continue
		}
		if !e.DataInicio.Before(agora) && !e.DataInicio.After(ate) {
			return true, nil
		}
		if !agora.Before(e.DataInicio) && !agora.After(e.DataFim) {
			return true, nil
		}
	}
	return false, nil
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func novoFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	for _, outro := range r.usuarios {
		if strings.EqualFold(outro.Email, u.Email) {
			return domain.ErrEmailJaCadastrado
		}
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	return r.usuarios[id], nil
}

func (r *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.usuarios[id]; !ok {
		return domain.ErrNaoEncontrado
	}
	delete(r.usuarios, id)
	return nil
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *fakeUsuarioRepo) Count(_ context.Context) (int, error) {
	return len(r.usuarios), nil
}

func (r *fakeUsuarioRepo) FirstAdminEmail(_ context.Context) (string, error) {
	var admins []*entity.Usuario
	for _, u := range r.usuarios {
		if u.Role == entity.RoleAdmin {
			admins = append(admins, u)
		}
	}
	if len(admins) == 0 {
		return "", nil
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].CriadoEm.Before(admins[j].CriadoEm) })
	return admins[0].Email, nil
}

type fakeFinanceiroRepo struct {
	lancamentos map[string]*entity.Financeiro
}

func novoFakeFinanceiroRepo() *fakeFinanceiroRepo {
	return &fakeFinanceiroRepo{lancamentos: make(map[string]*entity.Financeiro)}
}

func (r *fakeFinanceiroRepo) Create(_ context.Context, f *entity.Financeiro) error {
	r.lancamentos[f.ID] = f
	return nil
}

func (r *fakeFinanceiroRepo) GetByID(_ context.Context, id string) (*entity.Financeiro, error) {
	return r.lancamentos[id], nil
}

func (r *fakeFinanceiroRepo) Update(_ context.Context, f *entity.Financeiro) error {
	r.lancamentos[f.ID] = f
	return nil
}

func (r *fakeFinanceiroRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.lancamentos[id]; !ok {
		return domain.ErrNaoEncontrado
	}
	delete(r.lancamentos, id)
	return nil
}

func (r *fakeFinanceiroRepo) porData() []*entity.Financeiro {
	out := make([]*entity.Financeiro, 0, len(r.lancamentos))
	for _, f := range r.lancamentos {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data.Before(out[j].Data) })
	return out
}

func (r *fakeFinanceiroRepo) ListByTipo(_ context.Context, tipo string) ([]*entity.Financeiro, error) {
	var out []*entity.Financeiro
	for i := len(r.porData()) - 1; i >= 0; i-- {
		f := r.porData()[i]
		if f.Tipo == tipo {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFinanceiroRepo) filtrar(f repository.FiltroFinanceiro) []*entity.Financeiro {
	var out []*entity.Financeiro
	for _, l := range r.porData() {
		if f.Tipo != "" && l.Tipo != f.Tipo {
			continue
		}
		if f.Inicio != nil && l.Data.Before(*f.Inicio) {
			continue
		}
		if f.Fim != nil && l.Data.After(*f.Fim) {
			continue
		}
		if f.Categoria != "" && !strings.Contains(strings.ToLower(l.Categoria), strings.ToLower(f.Categoria)) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (r *fakeFinanceiroRepo) ListFiltered(_ context.Context, f repository.FiltroFinanceiro) ([]*entity.Financeiro, error) {
	return r.filtrar(f), nil
}

func (r *fakeFinanceiroRepo) TotalPorTipo(_ context.Context, tipo string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, f := range r.lancamentos {
		if f.Tipo == tipo {
			total = total.Add(f.Valor)
		}
	}
	return total, nil
}

func (r *fakeFinanceiroRepo) PorCategoria(_ context.Context, f repository.FiltroFinanceiro) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	for _, l := range r.filtrar(f) {
		cat := l.Categoria
		if cat == "" {
			cat = "Sem categoria"
		}
		out[cat] = out[cat].Add(l.Valor)
	}
	return out, nil
}

// fakePDF devolve bytes fixos e registra as chamadas.
type fakePDF struct {
	chamadas []string
}

func (p *fakePDF) FichaMembro(_ context.Context, _ *entity.Membro) ([]byte, error) {
	p.chamadas = append(p.chamadas, "ficha")
	return []byte("%PDF-ficha"), nil
}

func (p *fakePDF) RelatorioMembros(_ context.Context, _ int, _ []usecase.SecaoDistribuicao) ([]byte, error) {
	p.chamadas = append(p.chamadas, "relatorio")
	return []byte("%PDF-relatorio"), nil
}

func (p *fakePDF) Aniversariantes(_ context.Context, _ time.Month, _ []*entity.Membro) ([]byte, error) {
	p.chamadas = append(p.chamadas, "aniversariantes")
	return []byte("%PDF-aniversariantes"), nil
}

func (p *fakePDF) Carta(_ context.Context, _ *entity.Carta) ([]byte, error) {
	p.chamadas = append(p.chamadas, "carta")
	return []byte("%PDF-carta"), nil
}

// fakeMailer captura as mensagens enviadas.
type fakeMailer struct {
	enviados []mensagemEnviada
	falha    error
}

type mensagemEnviada struct {
	Para    string
	Assunto string
	Corpo   string
}

func (m *fakeMailer) Enviar(_ context.Context, para, assunto, corpoHTML string) error {
	if m.falha != nil {
		return m.falha
	}
	m.enviados = append(m.enviados, mensagemEnviada{Para: para, Assunto: assunto, Corpo: corpoHTML})
	return nil
}
