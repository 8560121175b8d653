package domain

import "testing"

func TestUnitList_保持插入序且容忍重复(t *testing.T) {
	l := NewUnitList()
	a := Unit{X: 1, Y: 2, Faction: FactionPlayer, BattleClass: ClassInfantry}
	b := Unit{X: 3, Y: 4, Faction: FactionEnemy, BattleClass: ClassCavalry}
	l.Add(a)
	l.Add(b)
	l.Add(a)

	got := l.Units()
	if len(got) != 3 {
		t.Fatalf("期望 3 个单位, got=%d", len(got))
	}
	if got[0] != a || got[1] != b || got[2] != a {
		t.Fatalf("期望保持插入序 [a b a], got=%v", got)
	}
}

func TestUnitList_RemoveAt_只删第一个匹配(t *testing.T) {
	a := Unit{X: 5, Y: 5, Faction: FactionPlayer, BattleClass: ClassArcher}
	b := Unit{X: 5, Y: 5, Faction: FactionEnemy, BattleClass: ClassMage}
	l := NewUnitListOf(a, b)

	removed, ok := l.RemoveAt(5, 5)
	if !ok {
		t.Fatalf("期望删除成功")
	}
	if removed != a {
		t.Fatalf("期望删除最早加入的 a, got=%v", removed)
	}
	if l.Len() != 1 {
		t.Fatalf("期望剩余 1 个单位, got=%d", l.Len())
	}
	if got, _ := l.UnitAt(5, 5); got != b {
		t.Fatalf("期望剩下 b, got=%v", got)
	}

	if _, ok := l.RemoveAt(9, 9); ok {
		t.Fatalf("期望空位置删除失败")
	}
}

func TestUnitList_prune_只检查上界并保序(t *testing.T) {
	keep1 := Unit{X: 0, Y: 0, Faction: FactionPlayer, BattleClass: ClassInfantry}
	gone1 := Unit{X: 20, Y: 5, Faction: FactionEnemy, BattleClass: ClassFlier}
	keep2 := Unit{X: 14, Y: 9, Faction: FactionAlly, BattleClass: ClassArmored}
	gone2 := Unit{X: 5, Y: 30, Faction: FactionNeutral, BattleClass: ClassMage}
	l := NewUnitListOf(keep1, gone1, keep2, gone2)

	removed := l.prune(15, 10)
	if len(removed) != 2 || removed[0] != gone1 || removed[1] != gone2 {
		t.Fatalf("期望按原顺序移除 [gone1 gone2], got=%v", removed)
	}
	got := l.Units()
	if len(got) != 2 || got[0] != keep1 || got[1] != keep2 {
		t.Fatalf("期望保留 [keep1 keep2] 且保序, got=%v", got)
	}
}

func TestUnitList_Units_返回快照(t *testing.T) {
	a := Unit{X: 1, Y: 1, Faction: FactionPlayer, BattleClass: ClassInfantry}
	l := NewUnitListOf(a)

	snap := l.Units()
	snap[0] = Unit{X: 9, Y: 9, Faction: FactionEnemy, BattleClass: ClassMage}

	if got, _ := l.UnitAt(1, 1); got != a {
		t.Fatalf("期望修改快照不影响列表, got=%v", got)
	}

	empty := NewUnitList()
	if got := empty.Units(); got != nil {
		t.Fatalf("期望空列表快照为 nil, got=%v", got)
	}
}

func TestUnitList_Equal_比较内容与顺序(t *testing.T) {
	a := Unit{X: 1, Y: 1, Faction: FactionPlayer, BattleClass: ClassInfantry}
	b := Unit{X: 2, Y: 2, Faction: FactionEnemy, BattleClass: ClassCavalry}

	if !NewUnitListOf(a, b).Equal(NewUnitListOf(a, b)) {
		t.Fatalf("期望同内容同顺序相等")
	}
	if NewUnitListOf(a, b).Equal(NewUnitListOf(b, a)) {
		t.Fatalf("期望顺序不同不相等")
	}
	if NewUnitListOf(a).Equal(NewUnitListOf(a, b)) {
		t.Fatalf("期望长度不同不相等")
	}
}
