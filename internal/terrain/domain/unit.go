package domain

import "fmt"

// Faction 表示单位阵营（封闭枚举）。
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
	FactionAlly
	FactionNeutral
)

var factionTags = [...]string{
	FactionPlayer:  "PLAYER",
	FactionEnemy:   "ENEMY",
	FactionAlly:    "ALLY",
	FactionNeutral: "NEUTRAL",
}

func (f Faction) String() string {
	if int(f) < len(factionTags) {
		return factionTags[f]
	}
	return fmt.Sprintf("Faction(%d)", uint8(f))
}

// ParseFaction 把序列化标签还原成 Faction；未知标签返回 ErrInvalidDocument。
func ParseFaction(tag string) (Faction, error) {
	for i, s := range factionTags {
		if s == tag {
			return Faction(i), nil
		}
	}
	return FactionPlayer, ErrInvalidDocument.WithData("faction", tag)
}

// BattleClass 表示单位兵种（封闭枚举）。
type BattleClass uint8

const (
	ClassInfantry BattleClass = iota
	ClassCavalry
	ClassArmored
	ClassFlier
	ClassArcher
	ClassMage
)

var battleClassTags = [...]string{
	ClassInfantry: "INFANTRY",
	ClassCavalry:  "CAVALRY",
	ClassArmored:  "ARMORED",
	ClassFlier:    "FLIER",
	ClassArcher:   "ARCHER",
	ClassMage:     "MAGE",
}

func (c BattleClass) String() string {
	if int(c) < len(battleClassTags) {
		return battleClassTags[c]
	}
	return fmt.Sprintf("BattleClass(%d)", uint8(c))
}

// ParseBattleClass 把序列化标签还原成 BattleClass；未知标签返回 ErrInvalidDocument。
func ParseBattleClass(tag string) (BattleClass, error) {
	for i, s := range battleClassTags {
		if s == tag {
			return BattleClass(i), nil
		}
	}
	return ClassInfantry, ErrInvalidDocument.WithData("battleClass", tag)
}

// Unit 是值对象：位置 + 阵营 + 兵种，相等性即四个字段全等（==）。
type Unit struct {
	X           int
	Y           int
	Faction     Faction
	BattleClass BattleClass
}
