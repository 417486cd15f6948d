package mute

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"snapcheck/internal/backend"
	"snapcheck/internal/config"
	"snapcheck/internal/directive"
	"snapcheck/internal/golden"
)

// Wrapper executes a test body exactly once, classifies the outcome
// against the artifact's ignore directives, and decides what to
// propagate. Policy is fixed at construction.
type Wrapper struct {
	policy   config.Policy
	resolver Resolver
	db       Database
	log      *zap.Logger
	run      uuid.UUID
}

// NewWrapper builds a wrapper. db and log may be nil.
func NewWrapper(policy config.Policy, db Database, log *zap.Logger) *Wrapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Wrapper{
		policy: policy,
		db:     db,
		log:    log,
		run:    uuid.New(),
	}
}

// Run invokes body with artifactPath, applying the mute lifecycle:
//
//   - a test whose handle manages its own lifecycle runs uninstrumented;
//   - a mute-database override, when present, replaces the whole run;
//   - otherwise the body runs once and the outcome is classified
//     against the ignore directives parsed from the artifact.
//
// An empty prefixes slice means backend.DefaultPrefixes. Directive
// rewrites (auto-mute, auto-unmute) always target the primary backend's
// spelling under the first prefix; directives naming the compatible
// backend are read-only inputs to resolution and are never edited.
func (w *Wrapper) Run(test TestHandle, artifactPath string, b backend.Backend, prefixes []backend.Prefix, body func(artifactPath string) error) error {
	if sm, ok := test.(SelfManaged); ok && sm.ManagesOwnLifecycle() {
		return body(artifactPath)
	}
	if len(prefixes) == 0 {
		prefixes = backend.DefaultPrefixes
	}
	instrumented := func() error {
		return w.runInstrumented(artifactPath, b, prefixes, body)
	}
	if w.db != nil && test != nil {
		if wrapped, ok := w.db.WrapIfMuted(w.testID(test), instrumented); ok {
			return wrapped()
		}
	}
	return instrumented()
}

func (w *Wrapper) testID(test TestHandle) TestID {
	return TestID{Suite: test.Suite(), Name: test.Name(), Run: w.run}
}

func (w *Wrapper) runInstrumented(path string, b backend.Backend, prefixes []backend.Prefix, body func(string) error) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(raw)

	var ignored bool
	var matched string
	if w.policy.RequireCompatibleBackendAgreement {
		ignored = w.resolver.IsIgnoredRequiringCompatible(b, text, prefixes)
		if ignored {
			matched, _ = w.resolver.Match(b, text, prefixes)
		}
	} else {
		matched, ignored = w.resolver.Match(b, text, prefixes)
	}

	if err := body(path); err != nil {
		return w.handleFailure(err, path, b, prefixes, ignored, matched)
	}
	if ignored {
		return w.reportSpuriousPass(path, b, prefixes)
	}
	return nil
}

// handleFailure propagates failures that no directive covers and
// suppresses the rest, optionally recording the directive first.
func (w *Wrapper) handleFailure(testErr error, path string, b backend.Backend, prefixes []backend.Prefix, ignored bool, matched string) error {
	if w.policy.RunIgnoredAsRegular || !ignored {
		return testErr
	}
	if w.policy.AutoMuteFailures {
		if err := w.insertDirective(path, prefixes[0].For(b), testErr); err != nil {
			return err
		}
	}
	if w.policy.VerboseIgnoredOutput {
		w.log.Error("muted test failed",
			zap.String("directive", matched),
			zap.String("artifact", path),
			zap.String("run", w.run.String()),
			zap.Error(testErr))
	} else {
		w.log.Info("muted test",
			zap.String("directive", matched),
			zap.String("artifact", path),
			zap.String("run", w.run.String()))
	}
	return nil
}

func (w *Wrapper) insertDirective(path, spelling string, testErr error) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &RewriteError{Path: path, Err: err, TestErr: testErr}
	}
	blk := directive.ParseBlock(string(raw))
	blk.Insert("// " + spelling)
	if !blk.Changed() {
		return nil
	}
	if err := golden.WriteFileAtomic(path, []byte(blk.Render())); err != nil {
		return &RewriteError{Path: path, Err: err, TestErr: testErr}
	}
	w.log.Info("ignore directive added",
		zap.String("directive", spelling),
		zap.String("artifact", path))
	return nil
}

// reportSpuriousPass handles an ignored test that returned cleanly: the
// directive is stale, so fail loudly naming it, after stripping it from
// the artifact when auto-unmute is on.
func (w *Wrapper) reportSpuriousPass(path string, b backend.Backend, prefixes []backend.Prefix) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(raw)
	present := w.resolver.Present(b, text, prefixes)

	if w.policy.AutoUnmutePasses {
		blk := directive.ParseBlock(text)
		for _, p := range prefixes {
			blk.Remove("// " + p.For(b))
		}
		if blk.Changed() {
			if err := golden.WriteFileAtomic(path, []byte(blk.Render())); err != nil {
				return &RewriteError{Path: path, Err: err}
			}
			w.log.Info("stale ignore directive removed",
				zap.Strings("directives", present),
				zap.String("artifact", path))
		}
	}

	return &SpuriousPassError{Path: path, Directives: present}
}
