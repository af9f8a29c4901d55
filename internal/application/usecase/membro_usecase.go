package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// SecaoDistribuicao bloco do relatório estatístico: um group-by com título.
type SecaoDistribuicao struct {
	Titulo string
	Itens  []repository.Distribuicao
}

// MembroPDF porto dos documentos impressos de membros.
type MembroPDF interface {
	FichaMembro(ctx context.Context, m *entity.Membro) ([]byte, error)
	RelatorioMembros(ctx context.Context, total int, secoes []SecaoDistribuicao) ([]byte, error)
	Aniversariantes(ctx context.Context, mes time.Month, membros []*entity.Membro) ([]byte, error)
}

// MembroUseCase casos de uso de membros: cadastro interno, cadastro público
// de visitantes, aniversariantes e relatório estatístico.
type MembroUseCase struct {
	repo      repository.MembroRepository
	linkRepo  repository.LinkPublicoRepository
	pdf       MembroPDF
	auditoria *auditoria.Registrador
}

// NewMembroUseCase constrói o caso de uso.
func NewMembroUseCase(
	repo repository.MembroRepository,
	linkRepo repository.LinkPublicoRepository,
	pdf MembroPDF,
	reg *auditoria.Registrador,
) *MembroUseCase {
	return &MembroUseCase{repo: repo, linkRepo: linkRepo, pdf: pdf, auditoria: reg}
}

// Create cadastra um membro. Duplicidade: mesmo CPF, ou mesmo nome com a
// mesma data de nascimento.
func (uc *MembroUseCase) Create(ctx context.Context, in dto.MembroRequest, usuario, origem string) (*dto.MembroResponse, error) {
	m, err := membroFromRequest(in)
	if err != nil {
		return nil, err
	}
	if m.CPF != "" {
		existente, err := uc.repo.FindByCPF(ctx, m.CPF)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
	}
	if m.DataNascimento != nil {
		existente, err := uc.repo.FindByNomeENascimento(ctx, m.Nome, *m.DataNascimento)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
	}
	m.ID = uuid.New().String()
	m.CriadoEm = time.Now()
	if m.DataCadastro == nil {
		agora := time.Now()
		m.DataCadastro = &agora
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Membro cadastrado: "+m.Nome, entity.ResultadoSucesso, origem)
	return toMembroResponse(m), nil
}

// GetByID devolve um membro, ou nil quando não existe.
func (uc *MembroUseCase) GetByID(ctx context.Context, id string) (*dto.MembroResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMembroResponse(m), nil
}

// Update atualiza um membro existente.
func (uc *MembroUseCase) Update(ctx context.Context, id string, in dto.MembroRequest, usuario, origem string) (*dto.MembroResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, nil
	}
	m, err := membroFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = atual.ID
	m.CriadoEm = atual.CriadoEm
	if m.DataCadastro == nil {
		m.DataCadastro = atual.DataCadastro
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Membro atualizado: "+m.Nome, entity.ResultadoSucesso, origem)
	return toMembroResponse(m), nil
}

// Delete remove um membro e a foto que ele tinha em disco.
func (uc *MembroUseCase) Delete(ctx context.Context, id, usuario, origem string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNaoEncontrado
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	removerArquivo(m.Foto)
	uc.auditoria.Registrar(ctx, usuario, "Membro removido: "+m.Nome, entity.ResultadoSucesso, origem)
	return nil
}

// AnexarFoto grava o caminho da foto no membro, descartando a anterior.
func (uc *MembroUseCase) AnexarFoto(ctx context.Context, id, caminho, usuario, origem string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNaoEncontrado
	}
	removerArquivo(m.Foto)
	m.Foto = caminho
	if err := uc.repo.Update(ctx, m); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Foto atualizada: "+m.Nome, entity.ResultadoSucesso, origem)
	return nil
}

// List pagina membros; com termo não vazio vira busca.
func (uc *MembroUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.MembroListResponse, error) {
	page.DefaultPage()
	var (
		list  []*entity.Membro
		total int
		err   error
	)
	if termo != "" {
		list, total, err = uc.repo.Search(ctx, termo, page.Limit, page.Offset)
	} else {
		list, total, err = uc.repo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MembroResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMembroResponse(m))
	}
	resp := &dto.MembroListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	if termo != "" {
		resp.Mensagem = dto.MensagemBusca(total, "Nenhum membro encontrado", "1 membro encontrado", "%d membro(s) encontrado(s)")
	}
	return resp, nil
}

// FichaPDF gera a ficha cadastral em PDF.
func (uc *MembroUseCase) FichaPDF(ctx context.Context, id string) ([]byte, string, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if m == nil {
		return nil, "", domain.ErrNaoEncontrado
	}
	b, err := uc.pdf.FichaMembro(ctx, m)
	if err != nil {
		return nil, "", err
	}
	return b, "ficha_" + nomeArquivo(m.Nome) + ".pdf", nil
}

// Aniversariantes lista os aniversariantes do mês do filtro.
func (uc *MembroUseCase) Aniversariantes(ctx context.Context, f repository.FiltroAniversariantes, page dto.PageRequest) (*dto.MembroListResponse, error) {
	page.DefaultPage()
	if f.Mes < 1 || f.Mes > 12 {
		f.Mes = int(time.Now().Month())
	}
	list, total, err := uc.repo.Aniversariantes(ctx, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MembroResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMembroResponse(m))
	}
	return &dto.MembroListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// AniversariantesPDF gera a lista de aniversariantes do mês em PDF.
func (uc *MembroUseCase) AniversariantesPDF(ctx context.Context, f repository.FiltroAniversariantes) ([]byte, string, error) {
	if f.Mes < 1 || f.Mes > 12 {
		f.Mes = int(time.Now().Month())
	}
	// sem paginação no PDF: a lista inteira do mês
	list, _, err := uc.repo.Aniversariantes(ctx, f, 1000, 0)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.Aniversariantes(ctx, time.Month(f.Mes), list)
	if err != nil {
		return nil, "", err
	}
	return b, "aniversariantes.pdf", nil
}

// colunas permitidas nas distribuições; nunca vem do cliente direto
var colunasDistribuicao = map[string]string{
	"sexo":         "sexo",
	"estado_civil": "estado_civil",
	"funcao":       "funcao",
	"status":       "status",
}

// Relatorio monta o relatório estatístico de membros dentro do filtro.
func (uc *MembroUseCase) Relatorio(ctx context.Context, f repository.FiltroMembros) (*dto.RelatorioMembrosResponse, error) {
	membros, err := uc.repo.ListFiltered(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.RelatorioMembrosResponse{
		Total:          len(membros),
		PorFaixaEtaria: distribuicaoFaixaEtaria(membros),
	}
	for chave, coluna := range colunasDistribuicao {
		dist, err := uc.repo.DistribuicaoPor(ctx, coluna, f)
		if err != nil {
			return nil, err
		}
		itens := toDistribuicaoDTO(dist)
		switch chave {
		case "sexo":
			resp.PorSexo = itens
		case "estado_civil":
			resp.PorEstadoCivil = itens
		case "funcao":
			resp.PorFuncao = itens
		case "status":
			resp.PorStatus = itens
		}
	}
	return resp, nil
}

// RelatorioPDF gera o relatório estatístico em PDF.
func (uc *MembroUseCase) RelatorioPDF(ctx context.Context, f repository.FiltroMembros) ([]byte, string, error) {
	rel, err := uc.Relatorio(ctx, f)
	if err != nil {
		return nil, "", err
	}
	secoes := []SecaoDistribuicao{
		{Titulo: "Por Sexo", Itens: fromDistribuicaoDTO(rel.PorSexo)},
		{Titulo: "Por Faixa Etária", Itens: fromDistribuicaoDTO(rel.PorFaixaEtaria)},
		{Titulo: "Por Estado Civil", Itens: fromDistribuicaoDTO(rel.PorEstadoCivil)},
		{Titulo: "Por Função", Itens: fromDistribuicaoDTO(rel.PorFuncao)},
		{Titulo: "Por Status", Itens: fromDistribuicaoDTO(rel.PorStatus)},
	}
	b, err := uc.pdf.RelatorioMembros(ctx, rel.Total, secoes)
	if err != nil {
		return nil, "", err
	}
	return b, "relatorio_membros.pdf", nil
}

// Funcoes lista as funções distintas cadastradas.
func (uc *MembroUseCase) Funcoes(ctx context.Context) ([]string, error) {
	return uc.repo.Funcoes(ctx)
}

// ── Cadastro público de visitantes ────────────────────────────────────────────

// LinkAtivo devolve o link público ativo de cadastro de visitantes, se houver.
func (uc *MembroUseCase) LinkAtivo(ctx context.Context) (*entity.LinkPublico, error) {
	return uc.linkRepo.GetAtivoPorTipo(ctx, entity.LinkVisitante)
}

// GerarLink desativa o link vigente (se houver) e cria um novo.
func (uc *MembroUseCase) GerarLink(ctx context.Context, usuario, origem string) (*entity.LinkPublico, error) {
	atual, err := uc.linkRepo.GetAtivoPorTipo(ctx, entity.LinkVisitante)
	if err != nil {
		return nil, err
	}
	if atual != nil {
		if err := uc.linkRepo.Desativar(ctx, atual.ID); err != nil {
			return nil, err
		}
	}
	novo := &entity.LinkPublico{
		ID:          uuid.New().String(),
		Tipo:        entity.LinkVisitante,
		Hash:        entity.GerarHash(),
		Ativo:       true,
		DataCriacao: time.Now(),
	}
	if err := uc.linkRepo.Create(ctx, novo); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Link de cadastro público gerado", entity.ResultadoSucesso, origem)
	return novo, nil
}

// DesativarLink desativa o link público vigente.
func (uc *MembroUseCase) DesativarLink(ctx context.Context, usuario, origem string) error {
	atual, err := uc.linkRepo.GetAtivoPorTipo(ctx, entity.LinkVisitante)
	if err != nil {
		return err
	}
	if atual == nil {
		return domain.ErrNaoEncontrado
	}
	if err := uc.linkRepo.Desativar(ctx, atual.ID); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Link de cadastro público desativado", entity.ResultadoSucesso, origem)
	return nil
}

// ValidarLink verifica se o hash corresponde a um link de visitante ativo.
func (uc *MembroUseCase) ValidarLink(ctx context.Context, hash string) error {
	l, err := uc.linkRepo.GetByHash(ctx, hash)
	if err != nil {
		return err
	}
	if l == nil || !l.Ativo || l.Tipo != entity.LinkVisitante {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// CadastrarVisitante cria um membro ativo com função Visitante a
// partir do formulário público. Nome e telefone são obrigatórios.
// Duplicidade: mesmo nome com mesmo telefone, ou mesmo e-mail.
func (uc *MembroUseCase) CadastrarVisitante(ctx context.Context, hash string, in dto.VisitanteRequest, origem string) (*dto.MembroResponse, error) {
	if err := uc.ValidarLink(ctx, hash); err != nil {
		return nil, err
	}
	if in.Nome == "" || in.Telefone == "" {
		return nil, domain.ErrEntradaInvalida
	}
	dup, err := uc.repo.FindVisitanteDuplicado(ctx, in.Nome, in.Telefone, in.Email)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, domain.ErrDuplicado
	}
	nascimento, err := dto.ParseData(in.DataNascimento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	agora := time.Now()
	m := &entity.Membro{
		ID:             uuid.New().String(),
		Nome:           in.Nome,
		Telefone:       in.Telefone,
		Email:          in.Email,
		DataNascimento: nascimento,
		Endereco:       in.Endereco,
		Bairro:         in.Bairro,
		Observacoes:    in.Observacoes,
		Funcao:         "Visitante",
		Status:         "Ativo",
		DataCadastro:   &agora,
		CriadoEm:       agora,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, "público", "Visitante cadastrado pelo link público: "+m.Nome, entity.ResultadoSucesso, origem)
	return toMembroResponse(m), nil
}

// ── conversões ────────────────────────────────────────────────────────────────

func membroFromRequest(in dto.MembroRequest) (*entity.Membro, error) {
	m := &entity.Membro{
		Foto:           in.Foto,
		Nome:           in.Nome,
		Sexo:           in.Sexo,
		EstadoCivil:    in.EstadoCivil,
		Conjuge:        in.Conjuge,
		Telefone:       in.Telefone,
		Email:          in.Email,
		Endereco:       in.Endereco,
		Bairro:         in.Bairro,
		CEP:            in.CEP,
		Batizado:       in.Batizado,
		Dizimista:      in.Dizimista,
		Funcao:         in.Funcao,
		Status:         in.Status,
		NumeroCarteira: in.NumeroCarteira,
		IgrejaLocal:    in.IgrejaLocal,
		Nacionalidade:  in.Nacionalidade,
		Naturalidade:   in.Naturalidade,
		RG:             in.RG,
		CPF:            in.CPF,
		Pai:            in.Pai,
		Mae:            in.Mae,
		Filiacao:       in.Filiacao,
		Observacoes:    in.Observacoes,
	}
	var err error
	datas := []struct {
		s   string
		dst **time.Time
	}{
		{in.DataNascimento, &m.DataNascimento},
		{in.DataBatismo, &m.DataBatismo},
		{in.DataCadastro, &m.DataCadastro},
		{in.Validade, &m.Validade},
		{in.DataConversao, &m.DataConversao},
		{in.DataSaida, &m.DataSaida},
	}
	for _, d := range datas {
		*d.dst, err = dto.ParseData(d.s)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
	}
	return m, nil
}

func toMembroResponse(m *entity.Membro) *dto.MembroResponse {
	if m == nil {
		return nil
	}
	return &dto.MembroResponse{
		ID:             m.ID,
		Foto:           m.Foto,
		Nome:           m.Nome,
		DataNascimento: dto.FormatData(m.DataNascimento),
		Sexo:           m.Sexo,
		EstadoCivil:    m.EstadoCivil,
		Conjuge:        m.Conjuge,
		Telefone:       m.Telefone,
		Email:          m.Email,
		Endereco:       m.Endereco,
		Bairro:         m.Bairro,
		CEP:            m.CEP,
		Batizado:       m.Batizado,
		Dizimista:      m.Dizimista,
		DataBatismo:    dto.FormatData(m.DataBatismo),
		Funcao:         m.Funcao,
		Status:         m.Status,
		DataCadastro:   dto.FormatData(m.DataCadastro),
		NumeroCarteira: m.NumeroCarteira,
		IgrejaLocal:    m.IgrejaLocal,
		Validade:       dto.FormatData(m.Validade),
		DataConversao:  dto.FormatData(m.DataConversao),
		DataSaida:      dto.FormatData(m.DataSaida),
		Nacionalidade:  m.Nacionalidade,
		Naturalidade:   m.Naturalidade,
		RG:             m.RG,
		CPF:            m.CPF,
		Pai:            m.Pai,
		Mae:            m.Mae,
		Filiacao:       m.Filiacao,
		Observacoes:    m.Observacoes,
		Ativo:          m.Ativo(),
	}
}

func toDistribuicaoDTO(dist []repository.Distribuicao) []dto.DistribuicaoDTO {
	out := make([]dto.DistribuicaoDTO, 0, len(dist))
	for _, d := range dist {
		out = append(out, dto.DistribuicaoDTO{Rotulo: d.Rotulo, Total: d.Total})
	}
	return out
}

func fromDistribuicaoDTO(itens []dto.DistribuicaoDTO) []repository.Distribuicao {
	out := make([]repository.Distribuicao, 0, len(itens))
	for _, d := range itens {
		out = append(out, repository.Distribuicao{Rotulo: d.Rotulo, Total: d.Total})
	}
	return out
}

// distribuicaoFaixaEtaria agrupa em memória; faixa vem da idade derivada.
func distribuicaoFaixaEtaria(membros []*entity.Membro) []dto.DistribuicaoDTO {
	agora := time.Now()
	ordem := []string{"0-18", "19-35", "36-60", "60+", "Não informado"}
	contagem := make(map[string]int)
	for _, m := range membros {
		faixa := m.FaixaEtaria(agora)
		if faixa == "" {
			faixa = "Não informado"
		}
		contagem[faixa]++
	}
	var out []dto.DistribuicaoDTO
	for _, faixa := range ordem {
		if n, ok := contagem[faixa]; ok {
			out = append(out, dto.DistribuicaoDTO{Rotulo: faixa, Total: n})
		}
	}
	return out
}
