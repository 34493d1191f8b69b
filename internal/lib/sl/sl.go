// Package sl содержит вспомогательные функции для структурированного
// логирования через slog.
package sl

import "log/slog"

// Err оборачивает ошибку в slog.Attr с ключом "error", чтобы ошибки
// во всех сервисах каталога логировались единообразно:
//
//	log.Error("failed to create booking", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
