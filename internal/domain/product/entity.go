// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
)

var (
	ErrInvalidID        = errors.New("product: invalid id")
	ErrInvalidStyle     = errors.New("product: invalid style")
	ErrInvalidTypeValue = errors.New("product: invalid typeValue")
)

// ProductAR is a renderable catalog product.
// Owned by the remote catalog source; the core treats it as read-only data
// transferred by value.
type ProductAR struct {
	ID           string `json:"id" firestore:"id"`
	Style        string `json:"style" firestore:"style"`
	TypeValue    string `json:"typeValue" firestore:"typeValue"`
	DisplayName  string `json:"displayName" firestore:"displayName"`
	ThumbnailURL string `json:"thumbnailUrl" firestore:"thumbnailUrl"`
}

// New normalizes and validates a ProductAR.
// DisplayName and ThumbnailURL are optional (thumbnail may be absent for
// products whose previews are still being generated).
func New(id, style, typeValue, displayName, thumbnailURL string) (ProductAR, error) {
	p := ProductAR{
		ID:           strings.TrimSpace(id),
		Style:        strings.TrimSpace(style),
		TypeValue:    strings.TrimSpace(typeValue),
		DisplayName:  strings.TrimSpace(displayName),
		ThumbnailURL: strings.TrimSpace(thumbnailURL),
	}
	if err := p.validate(); err != nil {
		return ProductAR{}, err
	}
	return p, nil
}

func (p ProductAR) validate() error {
	if p.ID == "" {
		return ErrInvalidID
	}
	if p.Style == "" {
		return ErrInvalidStyle
	}
	if p.TypeValue == "" {
		return ErrInvalidTypeValue
	}
	return nil
}
