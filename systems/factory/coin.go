package factory

import (
	"github.com/automoto/infinite-plumber/archetypes"
	"github.com/automoto/infinite-plumber/components"
	cfg "github.com/automoto/infinite-plumber/config"
	"github.com/automoto/infinite-plumber/shared/gamemath"
	"github.com/automoto/infinite-plumber/shared/leveldata"
	"github.com/automoto/infinite-plumber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, sd *components.SpaceData, spec leveldata.CoinSpec) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	components.Object.SetValue(coin, components.ObjectData{
		Rect: gamemath.NewRect(spec.X, spec.Y, cfg.Coin.Size, cfg.Coin.Size),
	})
	components.Coin.SetValue(coin, components.CoinData{
		BaseY: spec.Y,
	})
	AttachProxy(sd, coin, tags.ResolvCoin)

	return coin
}
