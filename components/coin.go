package components

import "github.com/yohamta/donburi"

// CoinData keeps the resting height a coin bobs around.
type CoinData struct {
	BaseY       float64
	FloatOffset float64 // current bob offset, Y = BaseY + FloatOffset
}

var Coin = donburi.NewComponentType[CoinData]()
