package domain

import (
	"errors"
	"testing"
)

func TestFaction_标签往返(t *testing.T) {
	all := []Faction{FactionPlayer, FactionEnemy, FactionAlly, FactionNeutral}
	for _, f := range all {
		got, err := ParseFaction(f.String())
		if err != nil || got != f {
			t.Fatalf("期望往返一致, %v -> %q -> (%v, %v)", f, f.String(), got, err)
		}
	}
	if _, err := ParseFaction("BANDIT"); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("期望未知阵营返回 ErrInvalidDocument, got=%v", err)
	}
}

func TestBattleClass_标签往返(t *testing.T) {
	all := []BattleClass{ClassInfantry, ClassCavalry, ClassArmored, ClassFlier, ClassArcher, ClassMage}
	for _, c := range all {
		got, err := ParseBattleClass(c.String())
		if err != nil || got != c {
			t.Fatalf("期望往返一致, %v -> %q -> (%v, %v)", c, c.String(), got, err)
		}
	}
	if _, err := ParseBattleClass("NINJA"); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("期望未知兵种返回 ErrInvalidDocument, got=%v", err)
	}
}

func TestUnit_按值比较(t *testing.T) {
	a := Unit{X: 1, Y: 2, Faction: FactionPlayer, BattleClass: ClassInfantry}
	b := Unit{X: 1, Y: 2, Faction: FactionPlayer, BattleClass: ClassInfantry}
	if a != b {
		t.Fatalf("期望同字段单位相等")
	}
	c := a
	c.BattleClass = ClassMage
	if a == c {
		t.Fatalf("期望兵种不同不相等")
	}
}
