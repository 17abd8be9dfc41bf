package models

import (
	"strconv"
	"time"
)

// CartSlots is the highest item id pre-populated in a new cart.
const CartSlots = 300

// Cart maps an item id to the quantity held. Quantities never go below zero.
type Cart map[string]int

func NewCart() Cart {
	cart := make(Cart, CartSlots+1)
	for i := 0; i <= CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CartData  Cart      `json:"cartData"`
	CreatedAt time.Time `json:"date"`
}
