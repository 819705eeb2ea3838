// Package bridge runs one classify, extract, resolve, open and activate cycle per trigger.
package bridge

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/activator"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/controller/classifier"
	documentcontext "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/document-context"
	workspaceresolver "github.com/johnkslg/CursorVSSync/src/focusbridge/controller/workspace-resolver"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/entity"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/gateway/notifier"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/internal/clock"
	"github.com/johnkslg/CursorVSSync/src/focusbridge/mapper"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey          = "bridge"
	_configKey        = "notifications"
	_filePlaceholder  = "{file}"
	_invocationLogKey = "invocation"
)

type notifications struct {
	Title    string   `yaml:"title"`
	Messages messages `yaml:"messages"`
}

type messages struct {
	NoActiveApp string `yaml:"noActiveApp"`
	NoWorkspace string `yaml:"noWorkspace"`
	NoFile      string `yaml:"noFile"`
	NoMatch     string `yaml:"noMatch"`
	OpenFailed  string `yaml:"openFailed"`
}

// Controller is the bridge orchestrator.
type Controller interface {
	// Run executes a single pass of the state machine and reports the terminal outcome.
	// It never panics: unexpected failures end in entity.StateFailed.
	Run(ctx context.Context) entity.Outcome
}

// Params are inbound parameters to initialize a new orchestrator.
type Params struct {
	fx.In

	Config     config.Provider
	Classifier classifier.Controller
	Extractor  documentcontext.Controller
	Resolver   workspaceresolver.Controller
	Activator  activator.Controller
	Notifier   notifier.Gateway
	Clock      clock.Clock
	Stats      tally.Scope
	Logger     *zap.SugaredLogger
}

type controller struct {
	classifier    classifier.Controller
	extractor     documentcontext.Controller
	resolver      workspaceresolver.Controller
	activator     activator.Controller
	notifier      notifier.Gateway
	notifications notifications
	clock         clock.Clock
	stats         tally.Scope
	logger        *zap.SugaredLogger
}

// New creates the bridge orchestrator.
func New(p Params) (Controller, error) {
	c := &controller{
		classifier: p.Classifier,
		extractor:  p.Extractor,
		resolver:   p.Resolver,
		activator:  p.Activator,
		notifier:   p.Notifier,
		clock:      p.Clock,
		stats:      p.Stats.SubScope(_nameKey),
		logger:     p.Logger,
	}
	if err := p.Config.Get(_configKey).Populate(&c.notifications); err != nil {
		return nil, fmt.Errorf("loading notification config: %w", err)
	}
	return c, nil
}

func (c *controller) Run(ctx context.Context) (out entity.Outcome) {
	logger := c.logger
	if id, err := mapper.ContextToInvocationID(ctx); err == nil {
		logger = logger.With(_invocationLogKey, id.String())
	}

	start := c.clock.Now()
	state := entity.StateIdle
	defer func() {
		if r := recover(); r != nil {
			out = entity.Outcome{
				State:  entity.StateFailed,
				Source: out.Source,
				Err:    fmt.Errorf("unexpected failure while %s: %v", state, r),
			}
		}
		out.Duration = c.clock.Since(start)
		c.report(ctx, logger, out)
	}()

	enter := func(next entity.State) {
		logger.Debugw("bridge transition", "from", state.String(), "to", next.String())
		state = next
	}
	c.run(ctx, &out, enter)
	return out
}

func (c *controller) run(ctx context.Context, out *entity.Outcome, enter func(entity.State)) {
	enter(entity.StateClassifying)
	source, ok := c.classifier.ClassifyForeground(ctx)
	if !ok {
		out.State = entity.StateNoActiveApp
		return
	}
	out.Source = source
	out.Destination = source.Role.Counterpart()

	enter(entity.StateExtractingContext)
	doc := c.extractor.Extract(ctx, source)
	out.Document = doc
	if doc.FilePath == "" {
		out.State = entity.StateNoDocument
		out.Reason = entity.NoDocumentReasonNoFile
		if source.Role == entity.RoleTreeIDE && doc.WorkspaceRoot == "" {
			out.Reason = entity.NoDocumentReasonNoWorkspace
		}
		return
	}

	enter(entity.StateResolving)
	target, ok := c.resolve(ctx, source.Role, doc)
	if !ok {
		out.State = entity.StateNoMatch
		return
	}
	out.Target = target

	enter(entity.StateOpening)
	pid, err := c.activator.Open(ctx, out.Destination, target)
	if err != nil {
		out.State = entity.StateOpenFailed
		out.Err = err
		return
	}
	out.ProcessID = pid

	// Activation does not gate success once the open call reported a process.
	enter(entity.StateActivating)
	out.Activated = c.activator.Focus(ctx, pid)
	out.State = entity.StateDone
}

// resolve maps the source document into the destination's address space.
// The IDE already reports absolute paths, so only editor sources need a tree search.
func (c *controller) resolve(ctx context.Context, source entity.ApplicationRole, doc entity.DocumentContext) (entity.Target, bool) {
	switch source {
	case entity.RoleTreeIDE:
		return entity.Target{Path: doc.FilePath, WorkspaceRoot: doc.WorkspaceRoot, Line: doc.Line}, true
	case entity.RoleFlatEditor:
		res, ok := c.resolver.FindFileByName(ctx, entity.RoleTreeIDE, doc.FilePath)
		if !ok {
			return entity.Target{}, false
		}
		return entity.Target{Path: res.Path, Line: doc.Line, ProcessID: res.ProcessID}, true
	default:
		return entity.Target{}, false
	}
}

func (c *controller) report(ctx context.Context, logger *zap.SugaredLogger, out entity.Outcome) {
	c.stats.Tagged(map[string]string{
		"outcome": out.State.String(),
		"source":  out.Source.Role.String(),
	}).Counter("runs").Inc(1)
	c.stats.Timer("latency").Record(out.Duration)

	fields := []interface{}{
		"outcome", out.State.String(),
		"source", out.Source.Role.String(),
		"sourcePid", out.Source.ProcessID,
		"destination", out.Destination.String(),
		"file", out.Document.FilePath,
		"target", out.Target.Path,
		"pid", out.ProcessID,
		"activated", out.Activated,
		"duration", out.Duration,
	}
	switch out.State {
	case entity.StateFailed:
		logger.Errorw("bridge failed unexpectedly", append(fields, "error", out.Err)...)
		return
	case entity.StateOpenFailed:
		logger.Warnw("bridge finished", append(fields, "error", out.Err)...)
	default:
		logger.Infow("bridge finished", fields...)
	}

	msg, ok := c.message(out)
	if !ok {
		return
	}
	if err := c.notifier.ShowMessage(ctx, msg); err != nil {
		logger.Warnw("showing notification", "error", err)
	}
}

// message returns the notification for an outcome. Done and Failed are silent.
func (c *controller) message(out entity.Outcome) (notifier.Message, bool) {
	m := c.notifications.Messages
	var (
		text  string
		file  string
		level = notifier.LevelInfo
	)
	switch out.State {
	case entity.StateNoActiveApp:
		text = m.NoActiveApp
	case entity.StateNoDocument:
		text = m.NoFile
		if out.Reason == entity.NoDocumentReasonNoWorkspace {
			text = m.NoWorkspace
		}
	case entity.StateNoMatch:
		text, file = m.NoMatch, mapper.BaseName(out.Document.FilePath)
	case entity.StateOpenFailed:
		text, file, level = m.OpenFailed, mapper.BaseName(out.Target.Path), notifier.LevelWarning
	default:
		return notifier.Message{}, false
	}
	if text == "" {
		return notifier.Message{}, false
	}
	return notifier.Message{
		Title: c.notifications.Title,
		Text:  strings.ReplaceAll(text, _filePlaceholder, file),
		Level: level,
	}, true
}
