// Package backup gera e restaura dumps do banco via pg_dump/psql,
// empacotados em zip com nome previsível: <db>_backup_<dd-mm-aaaa>.zip
// contendo um único .sql de mesmo nome.
package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/soarespaullo/SiGI/pkg/config"
)

// Service executa dump e restore do PostgreSQL configurado.
type Service struct {
	db config.DBConfig
}

// NewService constrói o serviço de backup.
func NewService(db config.DBConfig) *Service {
	return &Service{db: db}
}

// NomeArquivo devolve o nome do zip para a data dada.
func (s *Service) NomeArquivo(data time.Time) string {
	return fmt.Sprintf("%s_backup_%s.zip", s.db.DBName, data.Format("02-01-2006"))
}

// Gerar roda pg_dump e devolve o conteúdo do zip com o .sql dentro.
func (s *Service) Gerar(ctx context.Context) ([]byte, string, error) {
	cmd := exec.CommandContext(ctx, "pg_dump", s.db.ConnectionString())
	var dump, stderr bytes.Buffer
	cmd.Stdout = &dump
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, "", fmt.Errorf("pg_dump: %w: %s", err, stderr.String())
	}

	agora := time.Now()
	nomeZip := s.NomeArquivo(agora)
	nomeSQL := fmt.Sprintf("%s_backup_%s.sql", s.db.DBName, agora.Format("02-01-2006"))

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(nomeSQL)
	if err != nil {
		return nil, "", fmt.Errorf("criar entrada do zip: %w", err)
	}
	if _, err := w.Write(dump.Bytes()); err != nil {
		return nil, "", fmt.Errorf("escrever dump no zip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("fechar zip: %w", err)
	}
	return buf.Bytes(), nomeZip, nil
}

// Restaurar extrai o primeiro .sql do zip enviado e aplica via psql.
func (s *Service) Restaurar(ctx context.Context, zipBytes []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return fmt.Errorf("abrir zip: %w", err)
	}

	var sqlDump []byte
	for _, f := range zr.File {
		if len(f.Name) < 4 || f.Name[len(f.Name)-4:] != ".sql" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("abrir %s: %w", f.Name, err)
		}
		sqlDump, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("ler %s: %w", f.Name, err)
		}
		break
	}
	if sqlDump == nil {
		return fmt.Errorf("zip não contém arquivo .sql")
	}

	cmd := exec.CommandContext(ctx, "psql", s.db.ConnectionString())
	cmd.Stdin = bytes.NewReader(sqlDump)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("psql: %w: %s", err, stderr.String())
	}
	return nil
}
