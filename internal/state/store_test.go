package state

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"nathanbeddoewebdev/taoquotes/internal/appearance"
	"nathanbeddoewebdev/taoquotes/internal/domain"
	"nathanbeddoewebdev/taoquotes/internal/kv"
)

var (
	ttc1 = domain.Quote{ID: "ttc-1", Text: "The Tao that can be told is not the eternal Tao.", Source: "Lao Tzu", Chapter: "Tao Te Ching, Chapter 1"}
	zz1  = domain.Quote{ID: "zz-1", Text: "Happiness is the absence of the striving for happiness.", Source: "Zhuangzi"}
	lz1  = domain.Quote{ID: "lz-1", Text: "The mind of the perfect man is like a mirror.", Source: "Liezi"}
)

func ptr[T any](v T) *T { return &v }

// switchable is an appearance source tests can flip.
type switchable struct {
	mu sync.Mutex
	v  domain.Appearance
}

func (s *switchable) Appearance() domain.Appearance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

func (s *switchable) set(v domain.Appearance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
}

func newStore(t *testing.T, mem *kv.MemoryStore, src appearance.Source) *Store {
	t.Helper()
	s := New(mem, src, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(s.Wait)
	return s
}

func readyStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	s := newStore(t, mem, appearance.Static(domain.AppearanceUnknown))
	s.Initialize(context.Background())
	return s, mem
}

func storedFavorites(t *testing.T, mem *kv.MemoryStore) []domain.Quote {
	t.Helper()
	raw, ok := mem.Value(FavoritesKey)
	if !ok {
		t.Fatal("favorites were never written")
	}
	var got []domain.Quote
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("stored favorites are not valid JSON: %v", err)
	}
	return got
}

func storedSettings(t *testing.T, mem *kv.MemoryStore) map[string]any {
	t.Helper()
	raw, ok := mem.Value(SettingsKey)
	if !ok {
		t.Fatal("settings were never written")
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("stored settings are not valid JSON: %v", err)
	}
	return got
}

func TestNew_Uninitialized(t *testing.T) {
	s := newStore(t, kv.NewMemoryStore(), nil)

	if s.IsInitialized() {
		t.Error("expected fresh store to be uninitialized")
	}
	if _, ok := s.CurrentQuote(); ok {
		t.Error("expected no current quote")
	}
	if len(s.Favorites()) != 0 {
		t.Error("expected no favorites")
	}
	if diff := cmp.Diff(domain.DefaultSettings(), s.Settings()); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_FreshStore(t *testing.T) {
	s, _ := readyStore(t)

	if !s.IsInitialized() {
		t.Fatal("expected store to be initialized")
	}
	if len(s.Favorites()) != 0 {
		t.Fatalf("expected empty favorites, got %v", s.Favorites())
	}
	if diff := cmp.Diff(domain.DefaultSettings(), s.Settings()); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}

	s.AddFavorite(ttc1)
	if n := len(s.Favorites()); n != 1 {
		t.Fatalf("expected 1 favorite, got %d", n)
	}

	s.UpdateSettings(domain.SettingsPatch{Theme: ptr(domain.ThemeDark)})
	if got := s.ResolvedTheme(); got != domain.ModeDark {
		t.Fatalf("expected resolved theme dark immediately, got %q", got)
	}
}

func TestSetCurrentQuote(t *testing.T) {
	s, mem := readyStore(t)

	unlisted := domain.Quote{ID: "not-in-catalog", Text: "anything"}
	s.SetCurrentQuote(unlisted)

	got, ok := s.CurrentQuote()
	if !ok || got != unlisted {
		t.Errorf("expected %+v, got %+v (ok=%v)", unlisted, got, ok)
	}

	s.SetCurrentQuote(zz1)
	if got, _ := s.CurrentQuote(); got != zz1 {
		t.Errorf("expected replacement, got %+v", got)
	}

	s.Wait()
	if _, ok := mem.Value("currentQuote"); ok {
		t.Error("current quote should not be persisted")
	}
}

func TestAddFavorite_Idempotent(t *testing.T) {
	s, mem := readyStore(t)

	s.AddFavorite(ttc1)
	once := s.Favorites()
	s.AddFavorite(ttc1)
	twice := s.Favorites()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second add changed favorites (-once +twice):\n%s", diff)
	}

	s.Wait()
	if n := mem.SetCount(FavoritesKey); n != 1 {
		t.Errorf("expected a single write, got %d", n)
	}
}

func TestAddFavorite_PreservesOrderAndPersists(t *testing.T) {
	s, mem := readyStore(t)

	s.AddFavorite(zz1)
	s.AddFavorite(ttc1)
	s.AddFavorite(lz1)
	s.Wait()

	want := []domain.Quote{zz1, ttc1, lz1}
	if diff := cmp.Diff(want, s.Favorites()); diff != "" {
		t.Errorf("in-memory mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, storedFavorites(t, mem)); diff != "" {
		t.Errorf("stored mismatch (-want +got):\n%s", diff)
	}
}

func TestFavorites_ReturnsCopy(t *testing.T) {
	s, _ := readyStore(t)
	s.AddFavorite(ttc1)

	got := s.Favorites()
	got[0].Text = "mutated"

	if s.Favorites()[0].Text != ttc1.Text {
		t.Error("caller mutation leaked into the store")
	}
}

func TestRemoveFavorite_Total(t *testing.T) {
	tests := []struct {
		name   string
		seed   []domain.Quote
		remove string
		want   []domain.Quote
	}{
		{"present", []domain.Quote{ttc1, zz1, lz1}, "zz-1", []domain.Quote{ttc1, lz1}},
		{"absent", []domain.Quote{ttc1}, "zz-1", []domain.Quote{ttc1}},
		{"empty", nil, "ttc-1", []domain.Quote{}},
		{"last one", []domain.Quote{ttc1}, "ttc-1", []domain.Quote{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mem := readyStore(t)
			for _, q := range tt.seed {
				s.AddFavorite(q)
			}

			s.RemoveFavorite(tt.remove)

			if s.IsFavorite(tt.remove) {
				t.Errorf("%q still a favorite", tt.remove)
			}
			if diff := cmp.Diff(tt.want, s.Favorites()); diff != "" {
				t.Errorf("favorites mismatch (-want +got):\n%s", diff)
			}

			s.Wait()
			if diff := cmp.Diff(tt.want, storedFavorites(t, mem)); diff != "" {
				t.Errorf("stored mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateSettings_PartialMerge(t *testing.T) {
	s, mem := readyStore(t)
	s.UpdateSettings(domain.SettingsPatch{
		Theme:        ptr(domain.ThemeLight),
		SoundEnabled: ptr(true),
	})

	before := s.Settings()
	s.UpdateSettings(domain.SettingsPatch{FontSize: ptr(domain.FontLarge)})
	after := s.Settings()

	want := before
	want.FontSize = domain.FontLarge
	if diff := cmp.Diff(want, after); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	s.Wait()
	wantStored := map[string]any{
		"theme":         "light",
		"fontSize":      "large",
		"soundEnabled":  true,
		"hapticEnabled": true,
	}
	if diff := cmp.Diff(wantStored, storedSettings(t, mem)); diff != "" {
		t.Errorf("stored settings mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateSettings_EmptyPatch(t *testing.T) {
	s, _ := readyStore(t)
	s.UpdateSettings(domain.SettingsPatch{})

	if diff := cmp.Diff(domain.DefaultSettings(), s.Settings()); diff != "" {
		t.Errorf("empty patch changed settings (-want +got):\n%s", diff)
	}
}

func TestUpdateSettings_NonThemeFieldDoesNotRecompute(t *testing.T) {
	src := &switchable{v: domain.AppearanceLight}
	s := newStore(t, kv.NewMemoryStore(), src)
	s.Initialize(context.Background())
	if s.ResolvedTheme() != domain.ModeLight {
		t.Fatalf("expected light after init, got %q", s.ResolvedTheme())
	}

	// Appearance moves but nothing has asked for a recomputation yet.
	src.set(domain.AppearanceDark)
	s.UpdateSettings(domain.SettingsPatch{SoundEnabled: ptr(true)})

	if s.ResolvedTheme() != domain.ModeLight {
		t.Errorf("expected stale light theme until the next trigger, got %q", s.ResolvedTheme())
	}
}

func TestUpdateResolvedTheme(t *testing.T) {
	tests := []struct {
		setting    domain.ThemeSetting
		appearance domain.Appearance
		want       domain.ThemeMode
	}{
		{domain.ThemeDark, domain.AppearanceLight, domain.ModeDark},
		{domain.ThemeDark, domain.AppearanceDark, domain.ModeDark},
		{domain.ThemeDark, domain.AppearanceUnknown, domain.ModeDark},
		{domain.ThemeLight, domain.AppearanceDark, domain.ModeLight},
		{domain.ThemeLight, domain.AppearanceUnknown, domain.ModeLight},
		{domain.ThemeAuto, domain.AppearanceLight, domain.ModeLight},
		{domain.ThemeAuto, domain.AppearanceDark, domain.ModeDark},
		{domain.ThemeAuto, domain.AppearanceUnknown, domain.ModeDark},
		{domain.ThemeAuto, "high-contrast", domain.ModeDark},
	}
	for _, tt := range tests {
		t.Run(string(tt.setting)+"/"+string(tt.appearance), func(t *testing.T) {
			s := newStore(t, kv.NewMemoryStore(), appearance.Static(tt.appearance))
			s.UpdateSettings(domain.SettingsPatch{Theme: ptr(tt.setting)})
			s.UpdateResolvedTheme()

			if got := s.ResolvedTheme(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExplicitThemeIgnoresAppearance(t *testing.T) {
	calls := 0
	src := appearance.SourceFunc(func() domain.Appearance {
		calls++
		return domain.AppearanceLight
	})
	s := newStore(t, kv.NewMemoryStore(), src)
	s.UpdateSettings(domain.SettingsPatch{Theme: ptr(domain.ThemeDark)})
	calls = 0

	s.UpdateResolvedTheme()

	if calls != 0 {
		t.Errorf("appearance consulted %d times for an explicit theme", calls)
	}
}

func TestHandleAppearanceChange(t *testing.T) {
	src := &switchable{v: domain.AppearanceDark}
	s := newStore(t, kv.NewMemoryStore(), src)
	s.Initialize(context.Background())

	src.set(domain.AppearanceLight)
	s.HandleAppearanceChange(domain.AppearanceLight)
	if s.ResolvedTheme() != domain.ModeLight {
		t.Fatalf("expected auto theme to follow appearance, got %q", s.ResolvedTheme())
	}

	s.UpdateSettings(domain.SettingsPatch{Theme: ptr(domain.ThemeDark)})
	s.HandleAppearanceChange(domain.AppearanceLight)
	if s.ResolvedTheme() != domain.ModeDark {
		t.Errorf("expected explicit dark to hold, got %q", s.ResolvedTheme())
	}
}

func TestRoundTrip_FreshStore(t *testing.T) {
	mem := kv.NewMemoryStore()
	first := newStore(t, mem, nil)
	first.Initialize(context.Background())
	first.AddFavorite(domain.Quote{ID: "a", Text: "alpha", Source: "Lao Tzu"})
	first.AddFavorite(domain.Quote{ID: "b", Text: "beta", Source: "Zhuangzi", Chapter: "Inner Chapters"})
	first.UpdateSettings(domain.SettingsPatch{FontSize: ptr(domain.FontSmall), HapticEnabled: ptr(false)})
	first.Wait()

	second := newStore(t, mem, nil)
	second.Initialize(context.Background())

	if diff := cmp.Diff(first.Favorites(), second.Favorites()); diff != "" {
		t.Errorf("favorites mismatch (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Settings(), second.Settings()); diff != "" {
		t.Errorf("settings mismatch (-first +second):\n%s", diff)
	}
}

func TestRoundTrip_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taoquotes.db")
	quiet := WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	db1, err := kv.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	first := New(db1, nil, quiet)
	first.Initialize(context.Background())
	first.AddFavorite(ttc1)
	first.AddFavorite(zz1)
	first.UpdateSettings(domain.SettingsPatch{Theme: ptr(domain.ThemeLight)})
	first.Wait()
	db1.Close()

	db2, err := kv.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer db2.Close()
	second := New(db2, nil, quiet)
	second.Initialize(context.Background())

	if diff := cmp.Diff([]domain.Quote{ttc1, zz1}, second.Favorites()); diff != "" {
		t.Errorf("favorites mismatch (-want +got):\n%s", diff)
	}
	if second.Settings().Theme != domain.ThemeLight {
		t.Errorf("expected light theme, got %q", second.Settings().Theme)
	}
	if second.ResolvedTheme() != domain.ModeLight {
		t.Errorf("expected resolved light, got %q", second.ResolvedTheme())
	}
}

func TestInitialize_ReadFailureKeepsDefaults(t *testing.T) {
	mem := kv.NewMemoryStore()
	mem.GetErr = errors.New("storage offline")
	s := newStore(t, mem, nil)

	s.Initialize(context.Background())

	if !s.IsInitialized() {
		t.Fatal("expected store to be ready despite read failures")
	}
	if len(s.Favorites()) != 0 {
		t.Error("expected empty favorites")
	}
	if diff := cmp.Diff(domain.DefaultSettings(), s.Settings()); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
	if s.ResolvedTheme() != domain.ModeDark {
		t.Errorf("expected dark for auto with unknown appearance, got %q", s.ResolvedTheme())
	}
}

func TestInitialize_MalformedData(t *testing.T) {
	mem := kv.NewMemoryStore()
	mem.Put(FavoritesKey, "[{not json")
	mem.Put(SettingsKey, `{"theme": 42}`)
	s := newStore(t, mem, nil)

	s.Initialize(context.Background())

	if !s.IsInitialized() {
		t.Fatal("expected store to be ready")
	}
	if len(s.Favorites()) != 0 {
		t.Error("expected malformed favorites to be ignored")
	}
	if diff := cmp.Diff(domain.DefaultSettings(), s.Settings()); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestInitialize_SettingsFieldFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   domain.AppSettings
	}{
		{
			name:   "missing fields take defaults",
			stored: `{"theme":"light"}`,
			want:   domain.AppSettings{Theme: domain.ThemeLight, FontSize: domain.FontMedium, SoundEnabled: false, HapticEnabled: true},
		},
		{
			name:   "unknown fields ignored",
			stored: `{"theme":"dark","fontSize":"small","soundEnabled":true,"hapticEnabled":false,"volume":11}`,
			want:   domain.AppSettings{Theme: domain.ThemeDark, FontSize: domain.FontSmall, SoundEnabled: true, HapticEnabled: false},
		},
		{
			name:   "out of range values reset per field",
			stored: `{"theme":"purple","fontSize":"huge","soundEnabled":true}`,
			want:   domain.AppSettings{Theme: domain.ThemeAuto, FontSize: domain.FontMedium, SoundEnabled: true, HapticEnabled: true},
		},
		{
			name:   "null document",
			stored: `null`,
			want:   domain.DefaultSettings(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := kv.NewMemoryStore()
			mem.Put(SettingsKey, tt.stored)
			s := newStore(t, mem, nil)

			s.Initialize(context.Background())

			if diff := cmp.Diff(tt.want, s.Settings()); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInitialize_DropsDuplicateStoredFavorites(t *testing.T) {
	mem := kv.NewMemoryStore()
	mem.Put(FavoritesKey, `[{"id":"a","text":"one","source":"x"},{"id":"b","text":"two","source":"y"},{"id":"a","text":"again","source":"x"}]`)
	s := newStore(t, mem, nil)

	s.Initialize(context.Background())

	got := s.Favorites()
	if len(got) != 2 || got[0].ID != "a" || got[0].Text != "one" || got[1].ID != "b" {
		t.Errorf("expected [a b] keeping the first a, got %+v", got)
	}
}

func TestInitialize_Twice(t *testing.T) {
	mem := kv.NewMemoryStore()
	s := newStore(t, mem, nil)
	s.Initialize(context.Background())
	s.AddFavorite(ttc1)
	s.Wait()

	s.Initialize(context.Background())

	if diff := cmp.Diff([]domain.Quote{ttc1}, s.Favorites()); diff != "" {
		t.Errorf("favorites mismatch after re-initialize (-want +got):\n%s", diff)
	}
	if !s.IsInitialized() {
		t.Error("expected store to stay initialized")
	}
}

func TestInitialize_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	db, err := kv.OpenSQLite(filepath.Join(dir, "taoquotes.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(db, nil)
	s.Initialize(ctx)

	if !s.IsInitialized() {
		t.Error("expected canceled loads to be swallowed")
	}
}

func TestMutationsBeforeInitialize(t *testing.T) {
	mem := kv.NewMemoryStore()
	s := newStore(t, mem, nil)

	s.AddFavorite(ttc1)
	s.UpdateSettings(domain.SettingsPatch{Theme: ptr(domain.ThemeLight)})

	if !s.IsFavorite(ttc1.ID) {
		t.Error("expected favorite to be added against defaults")
	}
	if s.ResolvedTheme() != domain.ModeLight {
		t.Errorf("expected light, got %q", s.ResolvedTheme())
	}
	if s.IsInitialized() {
		t.Error("mutations must not mark the store initialized")
	}
}

func TestWriteFailure_MemoryUnaffected(t *testing.T) {
	mem := kv.NewMemoryStore()
	mem.SetErr = errors.New("disk full")
	s := newStore(t, mem, nil)
	s.Initialize(context.Background())

	s.AddFavorite(ttc1)
	s.UpdateSettings(domain.SettingsPatch{FontSize: ptr(domain.FontLarge)})
	s.Wait()

	if !s.IsFavorite(ttc1.ID) {
		t.Error("expected favorite to survive a failed write")
	}
	if s.Settings().FontSize != domain.FontLarge {
		t.Error("expected settings to survive a failed write")
	}
	if _, ok := mem.Value(FavoritesKey); ok {
		t.Error("nothing should have been stored")
	}
}

func TestMutationDoesNotWaitForStorage(t *testing.T) {
	mem := kv.NewMemoryStore()
	release := make(chan struct{})
	mem.BeforeSet = func(string, string) { <-release }
	s := newStore(t, mem, nil)
	defer close(release)

	done := make(chan struct{})
	go func() {
		s.AddFavorite(ttc1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("AddFavorite blocked on storage")
	}
	if !s.IsFavorite(ttc1.ID) {
		t.Error("expected in-memory update while the write is pending")
	}
}

func TestOverlappingWrites_LastMutationWins(t *testing.T) {
	mem := kv.NewMemoryStore()
	rng := rand.New(rand.NewPCG(7, 11))
	var rngMu sync.Mutex
	mem.BeforeSet = func(string, string) {
		rngMu.Lock()
		d := time.Duration(rng.IntN(3)) * time.Millisecond
		rngMu.Unlock()
		time.Sleep(d)
	}
	s := newStore(t, mem, nil)

	for i := 0; i < 20; i++ {
		s.AddFavorite(domain.Quote{ID: string(rune('a' + i)), Text: "q", Source: "s"})
		if i%3 == 0 {
			s.RemoveFavorite(string(rune('a' + i)))
		}
	}
	s.Wait()

	if diff := cmp.Diff(s.Favorites(), storedFavorites(t, mem)); diff != "" {
		t.Errorf("storage does not hold the latest state (-memory +stored):\n%s", diff)
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := readyStore(t)

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.SetCurrentQuote(ttc1)
	s.AddFavorite(ttc1)
	s.AddFavorite(ttc1) // no-op, no notification
	s.UpdateSettings(domain.SettingsPatch{SoundEnabled: ptr(true)})
	if calls != 3 {
		t.Errorf("expected 3 notifications, got %d", calls)
	}

	unsubscribe()
	s.RemoveFavorite(ttc1.ID)
	if calls != 3 {
		t.Errorf("expected no notifications after unsubscribe, got %d", calls)
	}
}
