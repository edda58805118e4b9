package building

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// Class identifies the kind of building constructed on a solar system
type Class int

const (
	ClassFarm Class = iota
	ClassLaboratory
	ClassGoldMine
)

type classConfig struct {
	Name       string
	Production shared.Resources
}

var classConfigs = map[Class]classConfig{
	ClassFarm:       {"Farm", shared.Resources{Food: 5}},
	ClassLaboratory: {"Laboratory", shared.Resources{Technology: 2}},
	ClassGoldMine:   {"GoldMine", shared.Resources{Gold: 8}},
}

// Classes returns every building class in declaration order
func Classes() []Class {
	return []Class{ClassFarm, ClassLaboratory, ClassGoldMine}
}

// Name returns the class name
func (c Class) Name() string {
	if config, ok := classConfigs[c]; ok {
		return config.Name
	}
	return "UNKNOWN"
}

func (c Class) String() string {
	return c.Name()
}

// Production returns the per-pass yield of the class
func (c Class) Production() shared.Resources {
	return classConfigs[c].Production
}

// ParseClass converts a class name (case-sensitive, as returned by Name) into a Class
func ParseClass(name string) (Class, error) {
	for _, class := range Classes() {
		if strings.EqualFold(class.Name(), name) {
			return class, nil
		}
	}
	return 0, fmt.Errorf("unknown building class: %s", name)
}

// Building is an immutable production capability on a solar system
type Building struct {
	class      Class
	production shared.Resources
}

// New constructs a building of the given class with its table production
func New(class Class) Building {
	return Building{class: class, production: class.Production()}
}

// Class returns the building class
func (b Building) Class() Class {
	return b.class
}

// Produce returns the resources yielded by one gathering pass
func (b Building) Produce() shared.Resources {
	return b.production
}

func (b Building) String() string {
	return fmt.Sprintf("Building(%s, %s)", b.class, b.production)
}
