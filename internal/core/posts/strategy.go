package posts

import (
	"Agora/internal/core/boards"
)

// Per-board-type image limits, from the board rules: galleries must
// carry at least one image, market posts up to ten, Q&A up to five.
const (
	galleryMinImages = 1
	galleryMaxImages = 20
	marketMaxImages  = 10
	qnaMaxImages     = 5
)

// Strategy bundles the board-type-specific behavior for a post's
// lifecycle: validation of the request, and hooks around create and
// update that own the post's extra-fields map. Dispatch is a plain
// table lookup keyed by board type.
type Strategy struct {
	ValidateCreate func(req *CreatePostRequest) error
	ValidateUpdate func(req *UpdatePostRequest) error
	BeforeCreate   func(post *Post, req *CreatePostRequest) error
	AfterCreate    func(post *Post) error
	BeforeUpdate   func(post *Post, req *UpdatePostRequest) error
	AfterUpdate    func(post *Post) error
}

// StrategyRegistry maps board types to their strategies
type StrategyRegistry map[boards.Type]*Strategy

// Resolve returns the strategy for a board type. A missing entry is a
// configuration fault: the server registers every known type at
// startup, so this never depends on user input.
func (r StrategyRegistry) Resolve(t boards.Type) (*Strategy, error) {
	s, ok := r[t]
	if s == nil || !ok {
		return nil, ErrUnknownBoardType
	}
	return s, nil
}

// DefaultStrategies builds the registry for the four built-in board
// types.
func DefaultStrategies() StrategyRegistry {
	return StrategyRegistry{
		boards.TypeGeneral: generalStrategy(),
		boards.TypeGallery: galleryStrategy(),
		boards.TypeMarket:  marketStrategy(),
		boards.TypeQnA:     qnaStrategy(),
	}
}

// generalStrategy has no extra rules beyond the post's own validation.
func generalStrategy() *Strategy {
	return &Strategy{
		ValidateCreate: func(req *CreatePostRequest) error { return nil },
		ValidateUpdate: func(req *UpdatePostRequest) error { return nil },
		BeforeCreate:   func(post *Post, req *CreatePostRequest) error { return nil },
		AfterCreate:    func(post *Post) error { return nil },
		BeforeUpdate:   func(post *Post, req *UpdatePostRequest) error { return nil },
		AfterUpdate:    func(post *Post) error { return nil },
	}
}

// galleryStrategy requires at least one image and derives the
// thumbnail from the first image after the images are attached.
func galleryStrategy() *Strategy {
	validate := func(urls []string) error {
		if len(urls) < galleryMinImages {
			return NewValidationError("imageUrls", "gallery posts require at least one image")
		}
		if len(urls) > galleryMaxImages {
			return NewValidationError("imageUrls", "too many images")
		}
		return nil
	}
	thumbnail := func(post *Post) error {
		if len(post.Images) == 0 {
			return nil
		}
		post.MergeExtraFields(map[string]any{ExtraThumbnailURL: post.Images[0].URL})
		return nil
	}
	return &Strategy{
		ValidateCreate: func(req *CreatePostRequest) error { return validate(req.ImageURLs) },
		ValidateUpdate: func(req *UpdatePostRequest) error { return validate(req.ImageURLs) },
		BeforeCreate:   func(post *Post, req *CreatePostRequest) error { return nil },
		AfterCreate:    thumbnail,
		BeforeUpdate:   func(post *Post, req *UpdatePostRequest) error { return nil },
		AfterUpdate:    thumbnail,
	}
}

// marketStrategy requires a price, bounds the optional coordinates, and
// copies the market fields into the post's extra fields. Updates merge
// key by key so untouched fields survive.
func marketStrategy() *Strategy {
	validate := func(fields map[string]any, imageCount int) error {
		if len(fields) == 0 {
			return NewValidationError("price", "price is required")
		}
		priceVal, ok := fields[ExtraPrice]
		if !ok || priceVal == nil {
			return NewValidationError("price", "price is required")
		}
		price, err := asInt64(ExtraPrice, priceVal)
		if err != nil {
			return err
		}
		if price < 0 {
			return NewValidationError("price", "price must be zero or positive")
		}
		if imageCount > marketMaxImages {
			return NewValidationError("imageUrls", "too many images")
		}
		return validateMarketLocation(fields)
	}
	apply := func(post *Post, fields map[string]any, isCreate bool) {
		merged := map[string]any{ExtraPrice: fields[ExtraPrice]}
		if status, ok := fields[ExtraTradeStatus]; ok {
			merged[ExtraTradeStatus] = status
		} else if isCreate {
			merged[ExtraTradeStatus] = "SELLING"
		}
		for _, key := range []string{ExtraLocation, ExtraLatitude, ExtraLongitude, ExtraCategory} {
			if v, ok := fields[key]; ok {
				merged[key] = v
			}
		}
		post.MergeExtraFields(merged)
	}
	return &Strategy{
		ValidateCreate: func(req *CreatePostRequest) error {
			return validate(req.ExtraFields, len(req.ImageURLs))
		},
		ValidateUpdate: func(req *UpdatePostRequest) error {
			return validate(req.ExtraFields, len(req.ImageURLs))
		},
		BeforeCreate: func(post *Post, req *CreatePostRequest) error {
			apply(post, req.ExtraFields, true)
			return nil
		},
		AfterCreate: func(post *Post) error { return nil },
		BeforeUpdate: func(post *Post, req *UpdatePostRequest) error {
			apply(post, req.ExtraFields, false)
			return nil
		},
		AfterUpdate: func(post *Post) error { return nil },
	}
}

// qnaStrategy caps images and seeds the selection slots; the actual
// selection happens through the comment service later.
func qnaStrategy() *Strategy {
	validateImages := func(urls []string) error {
		if len(urls) > qnaMaxImages {
			return NewValidationError("imageUrls", "too many images")
		}
		return nil
	}
	return &Strategy{
		ValidateCreate: func(req *CreatePostRequest) error { return validateImages(req.ImageURLs) },
		ValidateUpdate: func(req *UpdatePostRequest) error { return validateImages(req.ImageURLs) },
		BeforeCreate: func(post *Post, req *CreatePostRequest) error {
			post.MergeExtraFields(map[string]any{
				ExtraSelectedCommentID: nil,
				ExtraSelectedAt:        nil,
			})
			return nil
		},
		AfterCreate:  func(post *Post) error { return nil },
		BeforeUpdate: func(post *Post, req *UpdatePostRequest) error { return nil },
		AfterUpdate:  func(post *Post) error { return nil },
	}
}

// validateMarketLocation enforces that latitude and longitude arrive as
// a pair, within valid ranges.
func validateMarketLocation(fields map[string]any) error {
	_, hasLat := fields[ExtraLatitude]
	_, hasLon := fields[ExtraLongitude]
	if hasLat != hasLon {
		return NewValidationError("location", "latitude and longitude must be provided together")
	}
	if !hasLat {
		return nil
	}
	lat, err := asFloat64(ExtraLatitude, fields[ExtraLatitude])
	if err != nil {
		return err
	}
	lon, err := asFloat64(ExtraLongitude, fields[ExtraLongitude])
	if err != nil {
		return err
	}
	if lat < -90 || lat > 90 {
		return NewValidationError(ExtraLatitude, "latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return NewValidationError(ExtraLongitude, "longitude must be between -180 and 180")
	}
	return nil
}
