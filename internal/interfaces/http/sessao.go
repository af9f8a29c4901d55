package http

import (
	"sync"
	"time"
)

// Janela em que a dispensa do alerta sobrevive em memória.
// Cobre com folga a validade do token de sessão.
const ttlAlerta = 24 * time.Hour

// AlertaStore lembra, por sessão, se o alerta de evento foi dispensado.
// O aviso continua aparecendo no painel até o usuário dispensá-lo; sair
// zera a marca. Estado puramente em memória: um restart apenas reexibe
// o alerta.
type AlertaStore struct {
	mu          sync.Mutex
	dispensados map[string]time.Time
}

// NewAlertaStore constrói o store vazio.
func NewAlertaStore() *AlertaStore {
	return &AlertaStore{dispensados: make(map[string]time.Time)}
}

// Dispensado informa se o alerta foi dispensado nesta sessão.
func (s *AlertaStore) Dispensado(sessao string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	quando, ok := s.dispensados[sessao]
	if !ok {
		return false
	}
	if time.Since(quando) > ttlAlerta {
		delete(s.dispensados, sessao)
		return false
	}
	return true
}

// Dispensar registra a dispensa do alerta nesta sessão.
func (s *AlertaStore) Dispensar(sessao string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.varrer()
	s.dispensados[sessao] = time.Now()
}

// Esquecer remove a marca da sessão (logout).
func (s *AlertaStore) Esquecer(sessao string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dispensados, sessao)
}

// varrer descarta marcas vencidas. Chamar com o mutex em mãos.
func (s *AlertaStore) varrer() {
	corte := time.Now().Add(-ttlAlerta)
	for k, v := range s.dispensados {
		if v.Before(corte) {
			delete(s.dispensados, k)
		}
	}
}
