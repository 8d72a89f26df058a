package service

import (
	"fmt"
	"math/rand/v2"
)

// CodeGenerator produces candidate auction codes
type CodeGenerator func() string

// RandomAuctionCode returns an 8 digit code: a 5 digit block in 10000-99999
// followed by a 3 digit block in 100-999.
func RandomAuctionCode() string {
	return fmt.Sprintf("%d%d", 10000+rand.IntN(90000), 100+rand.IntN(900))
}
