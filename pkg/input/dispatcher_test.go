package input

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/decker502/rpgproto/pkg/components"
	"github.com/decker502/rpgproto/pkg/ecs"
	"github.com/decker502/rpgproto/pkg/types"
	"github.com/decker502/rpgproto/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ========== 测试替身 ==========

type fakePointer struct {
	anyKey  bool
	pressed bool
	x, y    int
}

func (p *fakePointer) AnyKeyPressed() bool  { return p.anyKey }
func (p *fakePointer) PrimaryPressed() bool { return p.pressed }
func (p *fakePointer) Position() (int, int) { return p.x, p.y }

type fakeUI struct {
	over bool
}

func (u *fakeUI) IsPointerOverUI(x, y int) bool { return u.over }

// fakeRaycaster 指针下方只有一个对象（或没有），按掩码和距离过滤
type fakeRaycaster struct {
	under *Hit
	calls int
}

func (r *fakeRaycaster) Raycast(x, y int, maxDistance float64, mask types.LayerMask) (Hit, bool) {
	r.calls++
	if r.under == nil || !mask.Contains(r.under.Layer) || r.under.Distance > maxDistance {
		return Hit{}, false
	}
	return *r.under, true
}

type cursorCall struct {
	img     *ebiten.Image
	hotspot image.Point
}

type fakeCursor struct {
	calls []cursorCall
}

func (c *fakeCursor) SetCursor(img *ebiten.Image, hotspot image.Point) {
	c.calls = append(c.calls, cursorCall{img: img, hotspot: hotspot})
}

type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

type fakeLabel struct {
	ops     []string
	visible bool
	target  ecs.EntityID
	text    string
	color   color.Color
}

func (l *fakeLabel) Show() {
	l.ops = append(l.ops, "show")
	l.visible = true
}

func (l *fakeLabel) Hide() {
	l.ops = append(l.ops, "hide")
	l.visible = false
}

func (l *fakeLabel) SetTarget(target ecs.EntityID) {
	l.ops = append(l.ops, "target")
	l.target = target
}

func (l *fakeLabel) SetText(text string) {
	l.ops = append(l.ops, "text")
	l.text = text
}

func (l *fakeLabel) SetColor(c color.Color) {
	l.ops = append(l.ops, "color")
	l.color = c
}

type fakeLoader struct {
	images map[string]*ebiten.Image
	label  *fakeLabel
	err    error
}

func (l *fakeLoader) LoadImage(id string) (*ebiten.Image, error) {
	img, ok := l.images[id]
	if !ok {
		return nil, errors.New("not found: " + id)
	}
	return img, nil
}

func (l *fakeLoader) InstantiateNameLabel() (NameLabel, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.label, nil
}

// ========== 测试夹具 ==========

type fixture struct {
	em        *ecs.EntityManager
	pointer   *fakePointer
	ui        *fakeUI
	raycaster *fakeRaycaster
	cursor    *fakeCursor
	clock     *fakeClock
	label     *fakeLabel
	attack    *ebiten.Image
	hand      *ebiten.Image
	events    []types.MouseEvent
	keyCalls  int
	d         *Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		em:        ecs.NewEntityManager(),
		pointer:   &fakePointer{x: 100, y: 100},
		ui:        &fakeUI{},
		raycaster: &fakeRaycaster{},
		cursor:    &fakeCursor{},
		clock:     &fakeClock{},
		label:     &fakeLabel{visible: true},
		attack:    ebiten.NewImage(40, 40),
		hand:      ebiten.NewImage(30, 30),
	}

	loader := &fakeLoader{
		images: map[string]*ebiten.Image{
			AttackCursorImageID: f.attack,
			HandCursorImageID:   f.hand,
		},
		label: f.label,
	}

	d, err := NewDispatcher(f.em, Host{
		Pointer:   f.pointer,
		UI:        f.ui,
		Raycaster: f.raycaster,
		Cursor:    f.cursor,
		Clock:     f.clock,
	}, loader)
	if err != nil {
		t.Fatalf("NewDispatcher() error: %v", err)
	}
	d.SetMouseListener(func(ev types.MouseEvent) { f.events = append(f.events, ev) })
	d.SetKeyListener(func() { f.keyCalls++ })
	f.d = d
	f.label.ops = nil // 忽略初始化时的 Hide
	return f
}

func (f *fixture) newMonster() ecs.EntityID {
	id := f.em.CreateEntity()
	ecs.AddComponent(f.em, id, components.NewOutlineComponent())
	return id
}

func (f *fixture) newItem(name string, tier types.ItemTier) ecs.EntityID {
	id := f.em.CreateEntity()
	ecs.AddComponent(f.em, id, components.NewOutlineComponent())
	ecs.AddComponent(f.em, id, &components.ItemInfoComponent{Name: name, Tier: tier})
	return id
}

func (f *fixture) pointAt(id ecs.EntityID, layer types.Layer) {
	f.raycaster.under = &Hit{Entity: id, Layer: layer, Distance: 50}
}

func (f *fixture) pointAtNothing() {
	f.raycaster.under = nil
}

func (f *fixture) takeEvents() []types.MouseEvent {
	ev := f.events
	f.events = nil
	return ev
}

func (f *fixture) outlineEnabled(t *testing.T, id ecs.EntityID) bool {
	t.Helper()
	outline, ok := ecs.GetComponent[*components.OutlineComponent](f.em, id)
	if !ok {
		t.Fatalf("entity %d has no OutlineComponent", id)
	}
	return outline.Enabled
}

// ========== 初始化 ==========

func TestNewDispatcherHidesLabel(t *testing.T) {
	f := newFixture(t)

	if f.label.visible {
		t.Error("label should be hidden after initialization")
	}
	state := f.d.State()
	if state.Pressed || state.PressedAt != 0 || state.HoverTarget != 0 || state.Cursor != types.CursorNone {
		t.Errorf("initial state: got %+v", state)
	}
}

func TestNewDispatcherErrors(t *testing.T) {
	img := ebiten.NewImage(8, 8)
	host := Host{}

	tests := []struct {
		name   string
		loader *fakeLoader
	}{
		{"missing attack cursor", &fakeLoader{images: map[string]*ebiten.Image{HandCursorImageID: img}, label: &fakeLabel{}}},
		{"missing hand cursor", &fakeLoader{images: map[string]*ebiten.Image{AttackCursorImageID: img}, label: &fakeLabel{}}},
		{"label failure", &fakeLoader{
			images: map[string]*ebiten.Image{AttackCursorImageID: img, HandCursorImageID: img},
			err:    errors.New("prefab broken"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDispatcher(ecs.NewEntityManager(), host, tt.loader)
			if err == nil || d != nil {
				t.Errorf("NewDispatcher: got (%v, %v), want error", d, err)
			}
		})
	}
}

// ========== 按键监听 ==========

func TestKeyListener(t *testing.T) {
	f := newFixture(t)

	f.d.OnFrame()
	if f.keyCalls != 0 {
		t.Errorf("no key pressed: got %d calls, want 0", f.keyCalls)
	}

	f.pointer.anyKey = true
	f.d.OnFrame()
	f.d.OnFrame()
	if f.keyCalls != 2 {
		t.Errorf("key held for 2 frames: got %d calls, want 2", f.keyCalls)
	}

	// UI 占用指针时按键监听器仍然触发
	f.ui.over = true
	f.d.OnFrame()
	if f.keyCalls != 3 {
		t.Errorf("key over UI: got %d calls, want 3", f.keyCalls)
	}
}

func TestListenersUnsetAreNoop(t *testing.T) {
	f := newFixture(t)
	f.d.SetKeyListener(nil)
	f.d.SetMouseListener(nil)

	f.pointer.anyKey = true
	f.pointer.pressed = true
	f.d.OnFrame()
	f.pointer.pressed = false
	f.d.OnFrame()

	if len(f.events) != 0 || f.keyCalls != 0 {
		t.Errorf("cleared listeners should not be called: events=%v keyCalls=%d", f.events, f.keyCalls)
	}
}

func TestButtonIgnoredWithoutMouseListener(t *testing.T) {
	f := newFixture(t)
	f.d.SetMouseListener(nil)

	f.pointer.pressed = true
	f.clock.now = 1.0
	f.d.OnFrame()
	if state := f.d.State(); state.Pressed || state.PressedAt != 0 {
		t.Errorf("no listener: got pressed=%v pressedAt=%v, want untracked", state.Pressed, state.PressedAt)
	}

	// 按住期间注册监听器：下一帧视为刚按下
	f.d.SetMouseListener(func(ev types.MouseEvent) { f.events = append(f.events, ev) })
	f.clock.now = 1.5
	f.d.OnFrame()

	want := []types.MouseEvent{types.MousePointerDown, types.MousePress}
	if got := f.takeEvents(); !reflect.DeepEqual(got, want) {
		t.Errorf("listener set mid-hold: got %v, want %v", got, want)
	}
	if got := f.d.State().PressedAt; got != 1.5 {
		t.Errorf("pressedAt: got %v, want 1.5", got)
	}
}

func TestListenerReplacement(t *testing.T) {
	f := newFixture(t)

	var second []types.MouseEvent
	f.d.SetMouseListener(func(ev types.MouseEvent) { second = append(second, ev) })

	f.pointer.pressed = true
	f.d.OnFrame()

	if len(f.events) != 0 {
		t.Errorf("replaced listener received %v", f.events)
	}
	want := []types.MouseEvent{types.MousePointerDown, types.MousePress}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("new listener: got %v, want %v", second, want)
	}
}

// ========== 按键/点击检测 ==========

func TestPressEmitsPointerDownThenPress(t *testing.T) {
	f := newFixture(t)

	f.pointer.pressed = true
	f.clock.now = 1.0
	f.d.OnFrame()

	want := []types.MouseEvent{types.MousePointerDown, types.MousePress}
	if got := f.takeEvents(); !reflect.DeepEqual(got, want) {
		t.Errorf("down frame: got %v, want %v", got, want)
	}

	state := f.d.State()
	if !state.Pressed || state.PressedAt != 1.0 {
		t.Errorf("state after press: got %+v, want Pressed at 1.0", state)
	}
}

func TestHeldEmitsPressOnly(t *testing.T) {
	f := newFixture(t)

	f.pointer.pressed = true
	f.d.OnFrame()
	f.takeEvents()

	for frame := 0; frame < 5; frame++ {
		f.clock.now += 1.0 / 60
		f.d.OnFrame()
		if got := f.takeEvents(); !reflect.DeepEqual(got, []types.MouseEvent{types.MousePress}) {
			t.Fatalf("held frame %d: got %v, want [Press]", frame, got)
		}
	}

	// 按下时间记录的是按下那一帧
	if f.d.State().PressedAt != 0 {
		t.Errorf("PressedAt: got %v, want 0", f.d.State().PressedAt)
	}
}

func TestReleaseClickThreshold(t *testing.T) {
	tests := []struct {
		name string
		held float64
		want []types.MouseEvent
	}{
		{"short tap", 0.05, []types.MouseEvent{types.MouseClick, types.MousePointerUp}},
		{"just under", 0.099, []types.MouseEvent{types.MouseClick, types.MousePointerUp}},
		{"exactly threshold", 0.1, []types.MouseEvent{types.MousePointerUp}},
		{"long hold", 0.5, []types.MouseEvent{types.MousePointerUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.clock.now = 0
			f.pointer.pressed = true
			f.d.OnFrame()
			f.takeEvents()

			f.clock.now = tt.held
			f.pointer.pressed = false
			f.d.OnFrame()

			if got := f.takeEvents(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("release after %vs: got %v, want %v", tt.held, got, tt.want)
			}

			state := f.d.State()
			if state.Pressed || state.PressedAt != 0 {
				t.Errorf("state after release: got %+v, want cleared", state)
			}
		})
	}
}

func TestIdleEmitsNothing(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		f.d.OnFrame()
	}
	if len(f.events) != 0 {
		t.Errorf("idle frames: got %v, want none", f.events)
	}
}

// ========== UI 优先 ==========

func TestPointerOverUISkipsFrame(t *testing.T) {
	f := newFixture(t)
	monster := f.newMonster()
	f.pointAt(monster, types.LayerMonster)

	f.ui.over = true
	f.pointer.pressed = true
	f.d.OnFrame()

	if f.raycaster.calls != 0 {
		t.Errorf("raycasts over UI: got %d, want 0", f.raycaster.calls)
	}
	if len(f.events) != 0 {
		t.Errorf("events over UI: got %v, want none", f.events)
	}
	if f.d.State().Pressed {
		t.Error("button state must not change while the pointer is over UI")
	}
	if f.outlineEnabled(t, monster) {
		t.Error("hover must not run while the pointer is over UI")
	}
	if len(f.cursor.calls) != 0 {
		t.Errorf("cursor calls over UI: got %d, want 0", len(f.cursor.calls))
	}

	// 离开 UI 后按键仍按住：补发按下
	f.ui.over = false
	f.d.OnFrame()
	want := []types.MouseEvent{types.MousePointerDown, types.MousePress}
	if got := f.takeEvents(); !reflect.DeepEqual(got, want) {
		t.Errorf("first frame off UI: got %v, want %v", got, want)
	}
}

// ========== 光标 ==========

func TestCursorAppliedOnlyOnChange(t *testing.T) {
	f := newFixture(t)
	monster := f.newMonster()

	for i := 0; i < 10; i++ {
		f.d.OnFrame()
	}
	if len(f.cursor.calls) != 1 {
		t.Fatalf("10 frames over nothing: got %d cursor calls, want 1", len(f.cursor.calls))
	}
	first := f.cursor.calls[0]
	if first.img != f.hand || first.hotspot != image.Pt(10, 0) {
		t.Errorf("hand cursor: got hotspot %v, want (10, 0) with hand image", first.hotspot)
	}
	if f.d.State().Cursor != types.CursorHand {
		t.Errorf("cursor state: got %v, want Hand", f.d.State().Cursor)
	}

	f.pointAt(monster, types.LayerMonster)
	for i := 0; i < 10; i++ {
		f.d.OnFrame()
	}
	if len(f.cursor.calls) != 2 {
		t.Fatalf("10 frames over monster: got %d total cursor calls, want 2", len(f.cursor.calls))
	}
	second := f.cursor.calls[1]
	if second.img != f.attack || second.hotspot != image.Pt(8, 0) {
		t.Errorf("attack cursor: got hotspot %v, want (8, 0) with attack image", second.hotspot)
	}
}

func TestCursorItemIsHand(t *testing.T) {
	f := newFixture(t)
	item := f.newItem("Potion", types.TierNormal)
	f.pointAt(item, types.LayerItem)

	f.d.OnFrame()
	if f.d.State().Cursor != types.CursorHand {
		t.Errorf("cursor over item: got %v, want Hand", f.d.State().Cursor)
	}
}

func TestCursorFrozenWhilePressed(t *testing.T) {
	f := newFixture(t)
	monster := f.newMonster()

	f.d.OnFrame() // Hand

	f.pointer.pressed = true
	f.pointAt(monster, types.LayerMonster)
	f.d.OnFrame()
	f.d.OnFrame()

	if len(f.cursor.calls) != 1 {
		t.Errorf("cursor changed while pressed: got %d calls, want 1", len(f.cursor.calls))
	}

	f.pointer.pressed = false
	f.d.OnFrame()
	if f.d.State().Cursor != types.CursorAttack {
		t.Errorf("cursor after release: got %v, want Attack", f.d.State().Cursor)
	}
}

func TestCursorRespectsMaxDistance(t *testing.T) {
	f := newFixture(t)
	monster := f.newMonster()
	f.raycaster.under = &Hit{Entity: monster, Layer: types.LayerMonster, Distance: 150}

	f.d.OnFrame()
	if f.d.State().Cursor != types.CursorHand {
		t.Errorf("monster beyond 100 units: got %v, want Hand", f.d.State().Cursor)
	}
	if f.d.HoverTarget() != 0 {
		t.Errorf("monster beyond 100 units should not be hovered, got %d", f.d.HoverTarget())
	}
}

// ========== 悬停 ==========

func TestHoverMonsterScenario(t *testing.T) {
	f := newFixture(t)
	a := f.newMonster()

	// 帧 1：什么都没指
	f.d.OnFrame()
	if f.d.HoverTarget() != 0 {
		t.Fatalf("frame 1 target: got %d, want none", f.d.HoverTarget())
	}

	// 帧 2：指向 A
	f.pointAt(a, types.LayerMonster)
	f.d.OnFrame()
	if f.d.HoverTarget() != a || !f.outlineEnabled(t, a) {
		t.Fatalf("frame 2: target=%d outline=%v, want %d/true", f.d.HoverTarget(), f.outlineEnabled(t, a), a)
	}

	// 帧 3：仍然是 A，外部关掉描边以检测重复进入
	outline, _ := ecs.GetComponent[*components.OutlineComponent](f.em, a)
	outline.Enabled = false
	f.d.OnFrame()
	if f.d.HoverTarget() != a {
		t.Fatalf("frame 3 target: got %d, want %d", f.d.HoverTarget(), a)
	}
	if outline.Enabled {
		t.Error("frame 3 re-applied entry effects for the same target")
	}
	outline.Enabled = true

	// 帧 4：什么都没指
	f.pointAtNothing()
	f.d.OnFrame()
	if f.d.HoverTarget() != 0 || f.outlineEnabled(t, a) {
		t.Errorf("frame 4: target=%d outline=%v, want none/false", f.d.HoverTarget(), f.outlineEnabled(t, a))
	}

	// 怪物不显示标签
	for _, op := range f.label.ops {
		if op == "show" {
			t.Error("monster hover must not show the name label")
		}
	}
}

func TestHoverItemShowsLabel(t *testing.T) {
	tests := []struct {
		tier types.ItemTier
		want color.RGBA
	}{
		{types.TierNormal, utils.TierColorNormal},
		{types.TierRare, utils.TierColorRare},
		{types.TierLegend, utils.TierColorLegend},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			f := newFixture(t)
			sword := f.newItem("Sword", tt.tier)
			f.pointAt(sword, types.LayerItem)

			f.d.OnFrame()

			if !f.label.visible {
				t.Error("label should be visible")
			}
			if f.label.text != "Sword" {
				t.Errorf("label text: got %q, want Sword", f.label.text)
			}
			if f.label.target != sword {
				t.Errorf("label target: got %d, want %d", f.label.target, sword)
			}
			if f.label.color != tt.want {
				t.Errorf("label color: got %v, want %v", f.label.color, tt.want)
			}
			if !f.outlineEnabled(t, sword) {
				t.Error("outline should be enabled on the item")
			}
		})
	}
}

func TestHoverIdempotent(t *testing.T) {
	f := newFixture(t)
	sword := f.newItem("Sword", types.TierRare)
	f.pointAt(sword, types.LayerItem)

	f.d.OnFrame()
	opsAfterFirst := len(f.label.ops)
	f.d.OnFrame()
	f.d.OnFrame()

	if len(f.label.ops) != opsAfterFirst {
		t.Errorf("repeated hover produced extra label ops: %v", f.label.ops[opsAfterFirst:])
	}
}

func TestHoverSwitchClearsPrevious(t *testing.T) {
	f := newFixture(t)
	sword := f.newItem("Sword", types.TierRare)
	slime := f.newMonster()

	f.pointAt(sword, types.LayerItem)
	f.d.OnFrame()

	f.label.ops = nil
	f.pointAt(slime, types.LayerMonster)
	f.d.OnFrame()

	if f.label.visible {
		t.Error("label should be hidden after moving from item to monster")
	}
	if !reflect.DeepEqual(f.label.ops, []string{"hide"}) {
		t.Errorf("label ops on switch: got %v, want [hide]", f.label.ops)
	}
	if f.outlineEnabled(t, sword) {
		t.Error("previous item outline should be disabled")
	}
	if !f.outlineEnabled(t, slime) {
		t.Error("new monster outline should be enabled")
	}
	if f.d.State().HoverLayer != types.LayerMonster {
		t.Errorf("HoverLayer: got %v, want Monster", f.d.State().HoverLayer)
	}
}

func TestHoverItemToItem(t *testing.T) {
	f := newFixture(t)
	sword := f.newItem("Sword", types.TierRare)
	crown := f.newItem("Crown", types.TierLegend)

	f.pointAt(sword, types.LayerItem)
	f.d.OnFrame()
	f.label.ops = nil

	f.pointAt(crown, types.LayerItem)
	f.d.OnFrame()

	want := []string{"hide", "show", "target", "text", "color"}
	if !reflect.DeepEqual(f.label.ops, want) {
		t.Errorf("label ops: got %v, want %v", f.label.ops, want)
	}
	if f.label.text != "Crown" || f.label.target != crown {
		t.Errorf("label: got %q/%d, want Crown/%d", f.label.text, f.label.target, crown)
	}
}

func TestHoverRunsWhilePressed(t *testing.T) {
	f := newFixture(t)
	slime := f.newMonster()
	f.pointer.pressed = true
	f.pointAt(slime, types.LayerMonster)

	f.d.OnFrame()
	if f.d.HoverTarget() != slime {
		t.Errorf("hover while pressed: got %d, want %d", f.d.HoverTarget(), slime)
	}
}

func TestHoverIgnoresOtherLayers(t *testing.T) {
	f := newFixture(t)
	ground := f.em.CreateEntity()
	f.pointAt(ground, types.LayerGround)

	f.d.OnFrame()
	if f.d.HoverTarget() != 0 {
		t.Errorf("ground should not be hoverable, got target %d", f.d.HoverTarget())
	}
}

func TestHoverMissingComponentsDoesNotPanic(t *testing.T) {
	f := newFixture(t)
	bare := f.em.CreateEntity() // 没有 Outline / ItemInfo
	f.pointAt(bare, types.LayerItem)

	f.d.OnFrame()
	if f.d.HoverTarget() != bare {
		t.Errorf("target: got %d, want %d", f.d.HoverTarget(), bare)
	}
	if f.label.visible {
		t.Error("label should stay hidden without ItemInfoComponent")
	}

	f.pointAtNothing()
	f.d.OnFrame()
	if f.d.HoverTarget() != 0 {
		t.Error("target should be cleared")
	}
}

func TestHoverTargetDestroyed(t *testing.T) {
	f := newFixture(t)
	slime := f.newMonster()
	f.pointAt(slime, types.LayerMonster)
	f.d.OnFrame()

	f.em.DestroyEntity(slime)
	f.em.RemoveMarkedEntities()
	f.pointAtNothing()
	f.d.OnFrame()

	if f.d.HoverTarget() != 0 {
		t.Errorf("destroyed target should be cleared, got %d", f.d.HoverTarget())
	}
}
