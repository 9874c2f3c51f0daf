package domain

import "errors"

var (
	ErrDuplicateName  = errors.New("name already exists")
	ErrEmptyName      = errors.New("name is empty")
	ErrInvalidImport  = errors.New("import failed: invalid export document")
	ErrInvalidPeriod  = errors.New("invalid period token")
	ErrNameNotFound   = errors.New("name not found")
	ErrRecordNotFound = errors.New("record not found")
	ErrReservedName   = errors.New("name is reserved")
)
