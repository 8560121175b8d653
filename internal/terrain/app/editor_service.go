package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"MapForge/internal/terrain/domain"
)

// session 是一张打开的地图和它的未保存标记。
type session struct {
	terrain *domain.Terrain
	dirty   bool
}

// SessionInfo 描述一个打开的会话，供列表接口使用。
type SessionInfo struct {
	Name      string `json:"name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	UnitCount int    `json:"unitCount"`
	Dirty     bool   `json:"dirty"`
}

// EditorService 管理打开的地图会话并把编辑操作转发给聚合。
// 领域模型非并发安全，所有入口由同一把互斥锁串行化。
type EditorService struct {
	repo TerrainRepo
	sink domain.Sink

	mu       sync.Mutex
	sessions map[string]*session
}

func NewEditorService(repo TerrainRepo, sink domain.Sink) *EditorService {
	if sink == nil {
		sink = domain.NopSink{}
	}
	return &EditorService{
		repo:     repo,
		sink:     sink,
		sessions: make(map[string]*session),
	}
}

// record 发出生命周期事件（变更类事件由聚合自己发）。
func (s *EditorService) record(kind domain.EventKind, name string) {
	s.sink.Record(domain.Event{Kind: kind, Map: name, At: time.Now()})
}

// Create 新建一张全平原地图并打开为脏会话（尚未落盘）。
// 同名会话或存储里已有同名地图都视为冲突。
func (s *EditorService) Create(ctx context.Context, name string, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[name]; ok {
		return ErrMapExists.WithData("name", name)
	}
	_, err := s.repo.Load(ctx, name)
	switch {
	case err == nil:
		return ErrMapExists.WithData("name", name)
	case errors.Is(err, domain.ErrTerrainNotFound):
		// 没有同名存档，可以新建
	default:
		return ErrUnavailable.WithReason(ReasonStoreLoadFail).WithCause(err)
	}

	t, err := domain.NewTerrain(name, width, height)
	if err != nil {
		return err
	}
	t.SetEventSink(s.sink)
	s.sessions[name] = &session{terrain: t, dirty: true}
	s.record(domain.EventMapCreated, name)
	return nil
}

// Open 从存储加载地图并打开会话；已打开时幂等返回。
func (s *EditorService) Open(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[name]; ok {
		return nil
	}
	doc, err := s.repo.Load(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrTerrainNotFound) {
			return err
		}
		return ErrUnavailable.WithReason(ReasonStoreLoadFail).WithCause(err)
	}
	t, err := domain.FromDoc(doc)
	if err != nil {
		return err
	}
	t.SetEventSink(s.sink)
	s.sessions[name] = &session{terrain: t}
	s.record(domain.EventMapOpened, name)
	return nil
}

// Get 返回地图文档：优先取打开的会话快照，否则只读加载存档。
func (s *EditorService) Get(ctx context.Context, name string) (*domain.Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[name]; ok {
		return sess.terrain.Doc(), nil
	}
	doc, err := s.repo.Load(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrTerrainNotFound) {
			return nil, err
		}
		return nil, ErrUnavailable.WithReason(ReasonStoreLoadFail).WithCause(err)
	}
	return doc, nil
}

// Save 把打开的会话写入存储并清除脏标记。
func (s *EditorService) Save(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return ErrMapNotOpen.WithData("name", name)
	}
	if err := s.repo.Save(ctx, sess.terrain.Doc()); err != nil {
		return ErrUnavailable.WithReason(ReasonStoreSaveFail).WithCause(err)
	}
	sess.dirty = false
	s.record(domain.EventMapSaved, name)
	return nil
}

// Close 关闭会话并丢弃内存状态；有未保存修改且未 force 时拒绝。
func (s *EditorService) Close(ctx context.Context, name string, force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return ErrMapNotOpen.WithData("name", name)
	}
	if sess.dirty && !force {
		return ErrUnsavedChanges.WithData("name", name)
	}
	delete(s.sessions, name)
	s.record(domain.EventMapClosed, name)
	return nil
}

// Delete 删除存储里的地图；打开的同名会话不受影响。
func (s *EditorService) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, domain.ErrTerrainNotFound) {
			return err
		}
		return ErrUnavailable.WithReason(ReasonStoreDeleteFail).WithCause(err)
	}
	s.record(domain.EventMapDeleted, name)
	return nil
}

// List 返回存储里的地图名（字典序）。
func (s *EditorService) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrUnavailable.WithReason(ReasonStoreListFail).WithCause(err)
	}
	sort.Strings(names)
	return names, nil
}

// Sessions 返回打开会话的概览（字典序）。
func (s *EditorService) Sessions() []SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SessionInfo, 0, len(s.sessions))
	for name, sess := range s.sessions {
		out = append(out, SessionInfo{
			Name:      name,
			Width:     sess.terrain.Width(),
			Height:    sess.terrain.Height(),
			UnitCount: sess.terrain.UnitCount(),
			Dirty:     sess.dirty,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Rename 改名并换会话键；目标名已被其他会话占用时拒绝，同名调用是 no-op。
// 只改内存：存档键不动，下次 Save 按新名字写。
func (s *EditorService) Rename(ctx context.Context, name, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return ErrMapNotOpen.WithData("name", name)
	}
	if newName == name {
		return nil
	}
	if _, taken := s.sessions[newName]; taken {
		return ErrMapExists.WithData("name", newName)
	}
	sess.terrain.Rename(newName)
	sess.dirty = true
	delete(s.sessions, name)
	s.sessions[newName] = sess
	return nil
}

// Resize 调整画布，越界单位由聚合移除。
func (s *EditorService) Resize(ctx context.Context, name string, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return ErrMapNotOpen.WithData("name", name)
	}
	if err := sess.terrain.Resize(width, height); err != nil {
		return err
	}
	sess.dirty = true
	return nil
}

// SetTile 修改一格地形，返回是否真的发生了变化。
func (s *EditorService) SetTile(ctx context.Context, name, tileTag string, x, y int) (bool, error) {
	tile, err := domain.ParseTile(tileTag)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return false, ErrMapNotOpen.WithData("name", name)
	}
	changed := sess.terrain.SetTile(tile, x, y)
	if changed {
		sess.dirty = true
	}
	return changed, nil
}

// AddUnit 放置单位，返回是否成功入场。
func (s *EditorService) AddUnit(ctx context.Context, name string, x, y int, factionTag, classTag string) (bool, error) {
	faction, err := domain.ParseFaction(factionTag)
	if err != nil {
		return false, err
	}
	class, err := domain.ParseBattleClass(classTag)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return false, ErrMapNotOpen.WithData("name", name)
	}
	added := sess.terrain.AddUnit(domain.Unit{X: x, Y: y, Faction: faction, BattleClass: class})
	if added {
		sess.dirty = true
	}
	return added, nil
}

// RemoveUnit 删除坐标上的第一个单位，返回是否删到了。
func (s *EditorService) RemoveUnit(ctx context.Context, name string, x, y int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return false, ErrMapNotOpen.WithData("name", name)
	}
	removed := sess.terrain.DeleteUnit(x, y)
	if removed {
		sess.dirty = true
	}
	return removed, nil
}

// TileAt 读取一格地形标签。
func (s *EditorService) TileAt(ctx context.Context, name string, x, y int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return "", ErrMapNotOpen.WithData("name", name)
	}
	tile, err := sess.terrain.TileAt(x, y)
	if err != nil {
		return "", err
	}
	return tile.String(), nil
}

// UnitAt 读取坐标上的第一个单位；空位返回 (nil, nil)。
func (s *EditorService) UnitAt(ctx context.Context, name string, x, y int) (*domain.UnitDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[name]
	if !ok {
		return nil, ErrMapNotOpen.WithData("name", name)
	}
	u, ok := sess.terrain.UnitAt(x, y)
	if !ok {
		return nil, nil
	}
	return &domain.UnitDoc{
		X:           u.X,
		Y:           u.Y,
		Faction:     u.Faction.String(),
		BattleClass: u.BattleClass.String(),
	}, nil
}
