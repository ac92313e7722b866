package service

import "context"

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type File struct {
	Name string
	Data []byte
}

type ExportService interface {
	// Users renders every user into a single-sheet workbook held in memory.
	Users(ctx context.Context) (*File, error)
}
