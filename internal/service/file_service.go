package service

import (
	"coinquote/internal/activitylog"
	"coinquote/internal/symbols"
)

// FileService exposes the two file-backed resources as whole-file reads.
type FileService struct {
	log   *activitylog.Log
	table *symbols.Table
}

func NewFileService(log *activitylog.Log, table *symbols.Table) *FileService {
	return &FileService{log: log, table: table}
}

func (s *FileService) ReadActivityLog() (string, error) {
	return s.log.Read()
}

func (s *FileService) ReadSymbolMap() (string, error) {
	return s.table.RawCSV()
}
