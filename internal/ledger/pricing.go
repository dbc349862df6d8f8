package ledger

import "hash/fnv"

const (
	priceFloor = 8
	priceBand  = 9 // prices land in [priceFloor, priceFloor+priceBand-1]
)

// Price maps a gift's name and source villager onto a stable sell price in
// the 8..16 band. The same pair always prices the same, so the shop list
// never re-rolls between views.
func Price(name, from string) int {
	hasher := fnv.New32a()
	hasher.Write([]byte(name))
	hasher.Write([]byte{'|'})
	hasher.Write([]byte(from))
	return priceFloor + int(hasher.Sum32()%priceBand)
}
