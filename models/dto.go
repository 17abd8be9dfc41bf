package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

type SignupRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	Category  string  `json:"category" binding:"required"`
	NewPrice  float64 `json:"new_price"`
	OldPrice  float64 `json:"old_price"`
	Available *bool   `json:"available"`
}

// RemoveProductRequest keeps ID a pointer so a missing id is rejected
// instead of decoding to product 0.
type RemoveProductRequest struct {
	ID *int `json:"id" binding:"required"`
}

type RelatedProductsRequest struct {
	Category string `json:"category" binding:"required"`
}

// ItemID accepts both `5` and `"5"` on the wire and keeps the cart key form.
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("itemId is required")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return errors.New("itemId is required")
		}
		*id = ItemID(s)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.New("itemId must be an integer or string")
	}
	*id = ItemID(strconv.FormatInt(n, 10))
	return nil
}

type CartItemRequest struct {
	ItemID ItemID `json:"itemId" binding:"required"`
}
