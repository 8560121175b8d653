package domain

// UnitList 是有序的单位集合：保序、容忍同位置重复。
// 占位唯一性只在聚合入场时校验一次，集合本身不做约束。
type UnitList struct {
	units []Unit
}

func NewUnitList() *UnitList {
	return &UnitList{}
}

// NewUnitListOf 按给定顺序构建集合（内容不做校验）。
func NewUnitListOf(units ...Unit) *UnitList {
	l := &UnitList{units: make([]Unit, len(units))}
	copy(l.units, units)
	return l
}

func (l *UnitList) Add(u Unit) {
	l.units = append(l.units, u)
}

// RemoveAt 删除坐标上的第一个单位，返回被删除的单位。
func (l *UnitList) RemoveAt(x, y int) (Unit, bool) {
	for i, u := range l.units {
		if u.X == x && u.Y == y {
			l.units = append(l.units[:i], l.units[i+1:]...)
			return u, true
		}
	}
	return Unit{}, false
}

// UnitAt 返回坐标上的第一个单位（插入序决定“第一个”）。
func (l *UnitList) UnitAt(x, y int) (Unit, bool) {
	for _, u := range l.units {
		if u.X == x && u.Y == y {
			return u, true
		}
	}
	return Unit{}, false
}

func (l *UnitList) Occupied(x, y int) bool {
	_, ok := l.UnitAt(x, y)
	return ok
}

func (l *UnitList) Len() int {
	return len(l.units)
}

// Units 返回插入序快照；修改返回值不影响集合本身。
func (l *UnitList) Units() []Unit {
	if len(l.units) == 0 {
		return nil
	}
	out := make([]Unit, len(l.units))
	copy(out, l.units)
	return out
}

// Equal 要求数量、顺序、字段全部一致。
func (l *UnitList) Equal(o *UnitList) bool {
	if l == nil || o == nil {
		return l == o
	}
	if len(l.units) != len(o.units) {
		return false
	}
	for i := range l.units {
		if l.units[i] != o.units[i] {
			return false
		}
	}
	return true
}

// prune 移除越界单位，保持幸存者相对顺序，返回被移除的单位（原顺序）。
func (l *UnitList) prune(width, height int) []Unit {
	var removed []Unit
	kept := l.units[:0]
	for _, u := range l.units {
		if u.X >= width || u.Y >= height {
			removed = append(removed, u)
			continue
		}
		kept = append(kept, u)
	}
	l.units = kept
	return removed
}
