package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Coin     = donburi.NewTag().SetName("Coin")
	Popup    = donburi.NewTag().SetName("Popup")
)

// Resolv tags for broad-phase queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvCoin   = "Coin"
)
