package ports

import (
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
)

// Parser turns stylesheet source into a tree.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	Parse(src []byte, syntax domain.Syntax, filename string) (*tree.RootNode, error)
}
