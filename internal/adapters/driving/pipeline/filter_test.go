//go:build unit

package pipeline

import (
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/philiph/saml-category-filter/internal/adapters/driven/metadata"
	"github.com/philiph/saml-category-filter/internal/core/domain"
	"github.com/philiph/saml-category-filter/internal/core/ports"
)

const (
	testSP = "https://sp.example.org/shibboleth"
	testRS = "http://refeds.org/category/research-and-scholarship"
)

// capturingMetrics records the MetricsRecorder calls the filter makes.
type capturingMetrics struct {
	applied     int
	removed     int
	defaulted   int
	synthesized int
}

func (m *capturingMetrics) RecordFilterApplied(spEntityID string, removed int) {
	m.applied++
	m.removed += removed
}

func (m *capturingMetrics) RecordRequestedDefaulted(spEntityID string, synthesized int) {
	m.defaulted++
	m.synthesized += synthesized
}

func (m *capturingMetrics) RecordPolicyLoad(source string, success bool, categoryCount int) {}

// TestAuthnContext_Interface verifies the RequestContext contract.
func TestAuthnContext_Interface(t *testing.T) {
	var _ ports.RequestContext = (*AuthnContext)(nil)
}

// TestCategoryFilter_Process_RemovesUnjustified verifies the end-to-end
// strict path through context, filter, logger and metrics.
func TestCategoryFilter_Process_RemovesUnjustified(t *testing.T) {
	policy := domain.NewCategoryPolicy(map[string][]string{
		testRS: {"mail", "displayName"},
	})
	recorder := &capturingMetrics{}
	filter := NewCategoryFilter(policy,
		WithLogger(zaptest.NewLogger(t)),
		WithMetricsRecorder(recorder),
	)

	rc := NewAuthnContext(testSP,
		domain.DeclaredCategoriesOf(testRS),
		domain.RequestedAttributesFromNames("mail", "eduPersonPrincipalName"),
	)

	filter.Process(rc)

	if got := rc.RequestedAttributes().Names(); !reflect.DeepEqual(got, []string{"mail"}) {
		t.Errorf("requested after Process = %v, want [mail]", got)
	}
	if recorder.applied != 1 || recorder.removed != 1 {
		t.Errorf("metrics = %+v, want 1 application with 1 removal", recorder)
	}
	if recorder.defaulted != 0 {
		t.Errorf("defaulted = %d, want 0", recorder.defaulted)
	}
}

// TestCategoryFilter_Process_NoCategories verifies the no-op path leaves the
// context untouched and records nothing.
func TestCategoryFilter_Process_NoCategories(t *testing.T) {
	policy := domain.NewCategoryPolicy(map[string][]string{testRS: {"mail"}},
		domain.WithDefaultWhenUnrequested(true))
	recorder := &capturingMetrics{}
	filter := NewCategoryFilter(policy, WithMetricsRecorder(recorder))

	rc := NewAuthnContext(testSP, domain.NoDeclaredCategories(), domain.AbsentRequestedAttributes())
	filter.Process(rc)

	if rc.RequestedAttributes().Present() {
		t.Error("requested list became present, want untouched absent list")
	}
	if recorder.applied != 0 || recorder.defaulted != 0 {
		t.Errorf("metrics = %+v, want nothing recorded", recorder)
	}
}

// TestCategoryFilter_Process_DefaultSynthesis verifies default synthesis is
// written back and metered.
func TestCategoryFilter_Process_DefaultSynthesis(t *testing.T) {
	policy := domain.NewCategoryPolicy(map[string][]string{
		testRS: {"mail", "displayName"},
	}, domain.WithDefaultWhenUnrequested(true))
	recorder := &capturingMetrics{}
	filter := NewCategoryFilter(policy,
		WithLogger(zaptest.NewLogger(t)),
		WithMetricsRecorder(recorder),
	)

	rc := NewAuthnContext(testSP, domain.DeclaredCategoriesOf(testRS), domain.AbsentRequestedAttributes())
	filter.Process(rc)

	want := []string{"mail", "displayName"}
	if got := rc.RequestedAttributes().Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("requested after Process = %v, want %v", got, want)
	}
	if recorder.defaulted != 1 || recorder.synthesized != 2 {
		t.Errorf("metrics = %+v, want 1 synthesis of 2 attributes", recorder)
	}
}

// TestCategoryFilter_Process_AbsentStaysAbsent verifies absent stays absent
// when default synthesis is off.
func TestCategoryFilter_Process_AbsentStaysAbsent(t *testing.T) {
	policy := domain.NewCategoryPolicy(map[string][]string{testRS: {"mail"}})
	filter := NewCategoryFilter(policy)

	rc := NewAuthnContext(testSP, domain.DeclaredCategoriesOf(testRS), domain.AbsentRequestedAttributes())
	filter.Process(rc)

	if rc.RequestedAttributes().Present() {
		t.Error("requested list became present, want absent")
	}
}

// TestCategoryFilter_Process_NilContext verifies a nil context is tolerated.
func TestCategoryFilter_Process_NilContext(t *testing.T) {
	filter := NewCategoryFilter(domain.NewCategoryPolicy(nil))
	filter.Process(nil) // must not panic
}

// TestNewAuthnContextFromSource verifies category resolution from metadata.
func TestNewAuthnContextFromSource(t *testing.T) {
	source := metadata.NewInMemoryCategorySource(metadata.SPInfo{
		EntityID:           testSP,
		CategoriesDeclared: true,
		EntityCategories:   []string{testRS},
	})

	rc := NewAuthnContextFromSource(testSP, source, domain.AbsentRequestedAttributes())
	if !rc.DeclaredCategories().Present() {
		t.Error("declared categories absent, want present from source")
	}

	unknown := NewAuthnContextFromSource("https://unknown.example.org", source, domain.AbsentRequestedAttributes())
	if unknown.DeclaredCategories().Present() {
		t.Error("unknown entity reported present categories, want absent")
	}
}

// TestCategoryFilter_Process_SharedPolicyConcurrent exercises a shared policy
// across goroutines, each owning its context.
func TestCategoryFilter_Process_SharedPolicyConcurrent(t *testing.T) {
	policy := domain.NewCategoryPolicy(map[string][]string{
		testRS: {"mail", "displayName"},
	})
	filter := NewCategoryFilter(policy)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				rc := NewAuthnContext(testSP,
					domain.DeclaredCategoriesOf(testRS),
					domain.RequestedAttributesFromNames("mail", "eduPersonPrincipalName"),
				)
				filter.Process(rc)
				if got := rc.RequestedAttributes().Names(); !reflect.DeepEqual(got, []string{"mail"}) {
					t.Errorf("requested = %v, want [mail]", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
