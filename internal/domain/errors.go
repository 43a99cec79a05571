package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrAlreadyUploaded = errors.New("artifact already uploaded in this session")
	ErrSessionClosed   = errors.New("upload session is closed")
	ErrNamespaceExists = errors.New("remote namespace already exists")
	ErrNoArchive       = errors.New("source archive not found")
)
