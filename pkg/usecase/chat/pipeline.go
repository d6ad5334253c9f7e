package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/model"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/usecase/assistant"
	"github.com/dedewkisaw/Embroidered-Personal-Assistant-Web-App-9383/pkg/utils/logging"
)

const DefaultDelay = time.Second

type State int

const (
	StateIdle State = iota
	StateAwaitingResponse
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingResponse:
		return "awaiting_response"
	default:
		return "unknown"
	}
}

// SnapshotSource supplies the latest productivity data. It may return a partial snapshot
// together with an error; nil fields keep their previous value.
type SnapshotSource interface {
	Load(ctx context.Context) (model.Snapshot, error)
}

// Pipeline runs the send/reply cycle of one session
type Pipeline struct {
	session *Session
	engine  *assistant.Engine
	source  SnapshotSource

	delay    time.Duration
	ordered  bool
	onTyping func(bool)
	onReply  func(model.Message)

	sendMu sync.Mutex

	mu       sync.Mutex
	snapshot model.Snapshot
	pending  int
	last     chan struct{}
	replies  sync.WaitGroup
}

// NewInput contains dependencies of a Pipeline
type NewInput struct {
	Session *Session
	Engine  *assistant.Engine
	Source  SnapshotSource // Optional: Initial is used as is when nil
	Initial model.Snapshot
}

// Option is a functional option for Pipeline
type Option func(*Pipeline)

// WithDelay sets the simulated latency before a reply lands
func WithDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		p.delay = d
	}
}

// WithOrderedReplies makes replies land in the order of their user messages even when sends
// overlap. Concurrent Send calls are serialized so that each reply is queued in the same order
// its user message was appended.
func WithOrderedReplies() Option {
	return func(p *Pipeline) {
		p.ordered = true
	}
}

// WithTypingHook is called when the typing indicator turns on or off. It runs with the
// pipeline locked and must not call back into the Pipeline.
func WithTypingHook(fn func(typing bool)) Option {
	return func(p *Pipeline) {
		p.onTyping = fn
	}
}

// WithReplyHook is called after each assistant reply is appended
func WithReplyHook(fn func(msg model.Message)) Option {
	return func(p *Pipeline) {
		p.onReply = fn
	}
}

func New(input NewInput, opts ...Option) *Pipeline {
	p := &Pipeline{
		session:  input.Session,
		engine:   input.Engine,
		source:   input.Source,
		snapshot: input.Initial,
		delay:    DefaultDelay,
	}
	if p.engine == nil {
		p.engine = assistant.New()
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Send handles one user message. Whitespace-only text is ignored and returns nil without error.
// The user message is appended before Send returns; the reply is appended after the delay.
func (p *Pipeline) Send(ctx context.Context, text string) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	logger := logging.From(ctx)

	if p.ordered {
		p.sendMu.Lock()
		defer p.sendMu.Unlock()
	}

	userMsg, err := p.session.AppendUser(text)
	if err != nil {
		return nil, err
	}
	p.begin()

	snapshot := p.refresh(ctx)
	p.session.Persist(ctx, Exchange{
		InputText:    text,
		ResponseText: model.ProcessingText,
		Context:      snapshot,
	})

	reply, intent := p.engine.RespondWithIntent(text, snapshot)
	logger.Debug("reply computed", "message_id", userMsg.ID, "intent", intent)

	p.schedule(ctx, reply)

	return &userMsg, nil
}

func (p *Pipeline) refresh(ctx context.Context) model.Snapshot {
	var next model.Snapshot
	if p.source != nil {
		loaded, err := p.source.Load(ctx)
		if err != nil {
			logging.From(ctx).Warn("failed to load snapshot, using previous values", "error", err)
		}
		next = loaded
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = p.snapshot.Merge(next)
	return p.snapshot
}

func (p *Pipeline) begin() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending++
	if p.pending == 1 && p.onTyping != nil {
		p.onTyping(true)
	}
}

func (p *Pipeline) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending--
	if p.pending == 0 && p.onTyping != nil {
		p.onTyping(false)
	}
}

func (p *Pipeline) schedule(ctx context.Context, reply string) {
	p.mu.Lock()
	var prev chan struct{}
	done := make(chan struct{})
	if p.ordered {
		prev = p.last
		p.last = done
	}
	p.replies.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.replies.Done()
		defer close(done)

		if p.delay > 0 {
			time.Sleep(p.delay)
		}
		if prev != nil {
			<-prev
		}

		msg, err := p.session.AppendAssistant(reply)
		p.finish()
		if err != nil {
			logging.From(ctx).Warn("reply dropped", "error", err)
			return
		}

		if p.onReply != nil {
			p.onReply(msg)
		}
	}()
}

// State reports whether any reply is still pending
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending > 0 {
		return StateAwaitingResponse
	}
	return StateIdle
}

// Snapshot returns the snapshot used by the latest send
func (p *Pipeline) Snapshot() model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Wait blocks until every scheduled reply has landed or been dropped
func (p *Pipeline) Wait() {
	p.replies.Wait()
}
