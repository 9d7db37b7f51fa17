package service

import (
	"time"

	"basegraph.app/helpdesk/internal/auth"
	"basegraph.app/helpdesk/internal/cache"
	"basegraph.app/helpdesk/internal/oracle"
	"basegraph.app/helpdesk/internal/queue"
)

type Config struct {
	Stores   StoreProvider
	TxRunner TxRunner
	Oracle   oracle.Oracle
	Tokens   auth.TokenIssuer
	// Cache is optional. Without it the waiting queue is read from the store every time.
	Cache    cache.Cache
	QueueTTL time.Duration
	// Producer switches automations to the worker. Nil runs them inline.
	Producer queue.Producer
}

type Services struct {
	cfg Config

	assignment AssignmentService
	responder  AutoResponseEngine
	summarizer SummaryEngine
	handler    TaskHandler
	runner     TaskRunner
}

func NewServices(cfg Config) *Services {
	if cfg.Oracle == nil {
		cfg.Oracle = oracle.NewDisabled()
	}

	s := &Services{cfg: cfg}
	s.assignment = NewAssignmentService(cfg.Stores, cfg.TxRunner, cfg.Oracle)
	s.responder = NewAutoResponseEngine(cfg.Stores, cfg.TxRunner, cfg.Oracle)
	s.summarizer = NewSummaryEngine(cfg.Stores, cfg.Oracle)
	s.handler = NewTaskHandler(s.assignment, s.responder, s.summarizer)

	if cfg.Producer != nil {
		s.runner = NewQueuedRunner(cfg.Producer)
	} else {
		s.runner = NewImmediateRunner(s.handler)
	}
	return s
}

func (s *Services) Assignments() AssignmentService {
	return s.assignment
}

func (s *Services) AutoResponses() AutoResponseEngine {
	return s.responder
}

func (s *Services) Summaries() SummaryEngine {
	return s.summarizer
}

// TaskHandler is what the worker executes for each stream entry.
func (s *Services) TaskHandler() TaskHandler {
	return s.handler
}

func (s *Services) Conversations() ConversationService {
	return NewConversationService(s.cfg.Stores, s.runner)
}

func (s *Services) Messages() MessageService {
	return NewMessageService(s.cfg.Stores, s.cfg.TxRunner, s.runner)
}

func (s *Services) Queue() QueueService {
	return NewQueueService(s.cfg.Stores, s.cfg.Cache, s.cfg.QueueTTL)
}

func (s *Services) Updates() UpdatesService {
	return NewUpdatesService(s.cfg.Stores)
}

func (s *Services) Experts() ExpertService {
	return NewExpertService(s.cfg.Stores)
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.cfg.Stores, s.cfg.TxRunner, s.cfg.Tokens)
}
