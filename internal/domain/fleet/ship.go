package fleet

import (
	"fmt"
	"strings"
)

// ShipClass identifies the kind of ship in a fleet
type ShipClass int

const (
	ShipClassColony ShipClass = iota
	ShipClassScout
	ShipClassFighter
)

type shipClassConfig struct {
	Name   string
	Health uint32
	Speed  uint32
	Damage uint32
}

// Stats are baseline numbers only; no combat is resolved from them.
var shipClassConfigs = map[ShipClass]shipClassConfig{
	ShipClassColony:  {"Colony", 100, 10, 10},
	ShipClassScout:   {"Scout", 50, 30, 5},
	ShipClassFighter: {"Fighter", 150, 10, 100},
}

// ShipClasses returns every ship class in declaration order
func ShipClasses() []ShipClass {
	return []ShipClass{ShipClassColony, ShipClassScout, ShipClassFighter}
}

// Name returns the class name
func (c ShipClass) Name() string {
	if config, ok := shipClassConfigs[c]; ok {
		return config.Name
	}
	return "UNKNOWN"
}

func (c ShipClass) String() string {
	return c.Name()
}

// ParseShipClass converts a class name into a ShipClass
func ParseShipClass(name string) (ShipClass, error) {
	for _, class := range ShipClasses() {
		if strings.EqualFold(class.Name(), name) {
			return class, nil
		}
	}
	return 0, fmt.Errorf("unknown ship class: %s", name)
}

// Ship is an immutable unit; its stats are a pure function of its class
type Ship struct {
	class  ShipClass
	health uint32
	speed  uint32
	damage uint32
}

// NewShip constructs a ship with the table stats of its class
func NewShip(class ShipClass) Ship {
	config := shipClassConfigs[class]
	return Ship{
		class:  class,
		health: config.Health,
		speed:  config.Speed,
		damage: config.Damage,
	}
}

func (s Ship) Class() ShipClass {
	return s.class
}

func (s Ship) Health() uint32 {
	return s.health
}

func (s Ship) Speed() uint32 {
	return s.speed
}

func (s Ship) Damage() uint32 {
	return s.damage
}

func (s Ship) String() string {
	return fmt.Sprintf("Ship(%s, health=%d, speed=%d, damage=%d)", s.class, s.health, s.speed, s.damage)
}
