package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeDoc is a Scroller with a vertical offset and mounted anchors.
type fakeDoc struct {
	offset  int
	anchors map[string]int
	tops    int
}

func (d *fakeDoc) ScrollTop() {
	d.offset = 0
	d.tops++
}

func (d *fakeDoc) ScrollToAnchor(id string) bool {
	line, ok := d.anchors[id]
	if !ok {
		return false
	}
	d.offset = line
	return true
}

func homeDoc() *fakeDoc {
	return &fakeDoc{anchors: map[string]int{"about": 40, "contact": 120}}
}

type recordingObserver struct {
	changes  [][2]View
	outcomes []Outcome
}

func (r *recordingObserver) ViewChanged(from, to View) {
	r.changes = append(r.changes, [2]View{from, to})
}

func (r *recordingObserver) AnchorResolved(_ AnchorRequest, o Outcome) {
	r.outcomes = append(r.outcomes, o)
}

func TestSelector_DefaultsToHome(t *testing.T) {
	s := NewSelector(homeDoc())
	if s.Current() != Home {
		t.Errorf("expected initial view Home, got %v", s.Current())
	}
	if _, ok := s.Pending(); ok {
		t.Error("expected no pending anchor on a fresh selector")
	}
}

func TestSelector_ReadAfterSet(t *testing.T) {
	s := NewSelector(homeDoc())
	seq := []View{Gallery, Gallery, Terms, Home, Privacy, Services, Home, Home, Terms}
	for i, v := range seq {
		s.SetActiveView(v)
		if got := s.Current(); got != v {
			t.Fatalf("step %d: set %v, read %v", i, v, got)
		}
	}
}

func TestSelector_SetHomeTwiceIsIdempotent(t *testing.T) {
	once := NewSelector(homeDoc())
	once.SetActiveView(Home)

	twice := NewSelector(homeDoc())
	twice.SetActiveView(Home)
	twice.SetActiveView(Home)

	assert.Equal(t, once.Current(), twice.Current())
	_, oncePending := once.Pending()
	_, twicePending := twice.Pending()
	assert.Equal(t, oncePending, twicePending)
}

func TestSelector_NavigateAndScrollTopResetsOffset(t *testing.T) {
	for _, prior := range Views() {
		for _, target := range Views() {
			doc := homeDoc()
			s := NewSelector(doc, WithInitialView(prior))
			doc.offset = 77
			s.NavigateAndScrollTop(target)
			if doc.offset != 0 {
				t.Errorf("%v -> %v: expected offset 0, got %d", prior, target, doc.offset)
			}
			if s.Current() != target {
				t.Errorf("%v -> %v: view = %v", prior, target, s.Current())
			}
		}
	}
}

func TestSelector_NavigateToAnchorHome(t *testing.T) {
	doc := homeDoc()
	s := NewSelector(doc, WithInitialView(Gallery))

	req, ok := s.NavigateToAnchor(Home, "about")
	require.True(t, ok, "expected a deferred request for Home")
	assert.Equal(t, 0, doc.offset, "scroll resets to top before the delay")
	assert.Equal(t, "about", req.Anchor)

	outcome, _ := s.Resolve(req)
	assert.Equal(t, OutcomeScrolled, outcome)
	assert.Equal(t, 40, doc.offset)
	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestSelector_NavigateToAnchorOtherViewIgnoresAnchor(t *testing.T) {
	doc := homeDoc()
	doc.offset = 12
	s := NewSelector(doc)

	_, ok := s.NavigateToAnchor(Gallery, "contact")
	if ok {
		t.Fatal("expected no deferred request for Gallery")
	}
	if s.Current() != Gallery {
		t.Errorf("expected Gallery, got %v", s.Current())
	}
	if doc.offset != 0 {
		t.Errorf("expected offset 0, got %d", doc.offset)
	}
	if _, pending := s.Pending(); pending {
		t.Error("expected no pending anchor")
	}
}

func TestSelector_EmptyAnchorSchedulesNothing(t *testing.T) {
	s := NewSelector(homeDoc())
	if _, ok := s.NavigateToAnchor(Home, ""); ok {
		t.Error("expected no request for empty anchor")
	}
}

func TestSelector_MissingAnchorPollsThenGivesUp(t *testing.T) {
	doc := homeDoc()
	s := NewSelector(doc, WithConfig(Config{MaxPolls: 2}))

	req, ok := s.NavigateToAnchor(Home, "nowhere")
	require.True(t, ok)

	outcome, next := s.Resolve(req)
	require.Equal(t, OutcomeRetry, outcome)
	require.Equal(t, 1, next.Attempt)

	outcome, next = s.Resolve(next)
	require.Equal(t, OutcomeRetry, outcome)

	outcome, _ = s.Resolve(next)
	assert.Equal(t, OutcomeMissing, outcome)
	assert.Equal(t, 0, doc.offset, "missing anchor leaves the top-reset offset")
	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestSelector_AnchorMountedDuringPoll(t *testing.T) {
	doc := &fakeDoc{anchors: map[string]int{}}
	s := NewSelector(doc)

	req, _ := s.NavigateToAnchor(Home, "contact")
	outcome, next := s.Resolve(req)
	require.Equal(t, OutcomeRetry, outcome)

	doc.anchors["contact"] = 99
	outcome, _ = s.Resolve(next)
	assert.Equal(t, OutcomeScrolled, outcome)
	assert.Equal(t, 99, doc.offset)
}

// A deferred scroll issued before a later navigation must not act on the
// new page, even if that page happens to carry the same anchor id.
func TestSelector_StaleAnchorAfterRenavigation(t *testing.T) {
	doc := homeDoc()
	s := NewSelector(doc)

	stale, _ := s.NavigateToAnchor(Home, "contact")
	s.NavigateAndScrollTop(Services)
	s.NavigateAndScrollTop(Home)

	outcome, _ := s.Resolve(stale)
	if outcome != OutcomeStale {
		t.Fatalf("expected stale, got %v", outcome)
	}
	if doc.offset != 0 {
		t.Errorf("stale scroll moved offset to %d", doc.offset)
	}
}

func TestSelector_NewerAnchorSupersedesOlder(t *testing.T) {
	doc := homeDoc()
	s := NewSelector(doc)

	first, _ := s.NavigateToAnchor(Home, "about")
	second, _ := s.NavigateToAnchor(Home, "contact")

	outcome, _ := s.Resolve(first)
	assert.Equal(t, OutcomeStale, outcome)
	pending, ok := s.Pending()
	require.True(t, ok, "stale resolution must not clear the newer request")
	assert.Equal(t, second, pending)

	outcome, _ = s.Resolve(second)
	assert.Equal(t, OutcomeScrolled, outcome)
	assert.Equal(t, 120, doc.offset)
}

func TestSelector_ServicesThenHomeScenario(t *testing.T) {
	doc := homeDoc()
	s := NewSelector(doc)
	doc.offset = 55

	s.NavigateAndScrollTop(Services)
	assert.Equal(t, Services, s.Current())
	assert.Equal(t, 0, doc.offset)

	doc.offset = 30
	s.NavigateAndScrollTop(Home)
	assert.Equal(t, Home, s.Current())
	assert.Equal(t, 0, doc.offset, "prior Home offset is not restored")
}

func TestSelector_ScrollToAnchorNowKeepsView(t *testing.T) {
	doc := homeDoc()
	s := NewSelector(doc)
	if !s.ScrollToAnchorNow("contact") {
		t.Fatal("expected contact anchor to be found")
	}
	if doc.offset != 120 || s.Current() != Home {
		t.Errorf("offset=%d view=%v", doc.offset, s.Current())
	}
	if s.ScrollToAnchorNow("absent") {
		t.Error("expected absent anchor to report false")
	}
}

func TestSelector_ScrollToAnchorNowCancelsPending(t *testing.T) {
	doc := homeDoc()
	s := NewSelector(doc, WithInitialView(Gallery))

	req, ok := s.NavigateToAnchor(Home, "about")
	require.True(t, ok)
	require.True(t, s.ScrollToAnchorNow("contact"))
	_, pending := s.Pending()
	assert.False(t, pending)

	outcome, _ := s.Resolve(req)
	assert.Equal(t, OutcomeStale, outcome)
	assert.Equal(t, 120, doc.offset, "the older about scroll must not fire")
	assert.Equal(t, Home, s.Current())
}

func TestSelector_ObserverAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := &recordingObserver{}
	s := NewSelector(homeDoc(), WithLogger(zap.New(core)), WithObserver(obs))

	req, _ := s.NavigateToAnchor(Home, "about")
	s.Resolve(req)
	s.SetActiveView(Terms)

	assert.Equal(t, [][2]View{{Home, Home}, {Home, Terms}}, obs.changes)
	assert.Equal(t, []Outcome{OutcomeScrolled}, obs.outcomes)
	assert.Equal(t, 1, logs.FilterMessage("view changed").Len())
	assert.Equal(t, 1, logs.FilterMessage("anchor resolved").Len())
}

func TestSelector_NilScroller(t *testing.T) {
	s := NewSelector(nil)
	s.NavigateAndScrollTop(Gallery)
	req, ok := s.NavigateToAnchor(Home, "about")
	require.True(t, ok)
	outcome, _ := s.Resolve(req)
	assert.Equal(t, OutcomeRetry, outcome)
}
