package tilemap

import "github.com/pkg/errors"

var (
	// ErrInvalidMap is returned for structurally broken map input
	ErrInvalidMap = errors.New("invalid map")

	// ErrInvalidTileID is returned for tile ids that fall outside the tileset
	ErrInvalidTileID = errors.New("invalid tile id")
)
