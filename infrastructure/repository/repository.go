// Package repository implementa o acesso a dados sobre Postgres.
// Cada chamada é uma única operação remota: sem retry e sem batching,
// com duração e resultado registrados no log.
package repository

import (
	"time"

	"github.com/sirupsen/logrus"
)

// logOperation registra a duração e o resultado de uma operação de banco
func logOperation(table, operation string, start time.Time, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"table":       table,
		"operation":   operation,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if err != nil {
		entry.WithError(err).Warn("Operação de banco falhou")
		return
	}

	entry.Debug("Operação de banco concluída")
}
