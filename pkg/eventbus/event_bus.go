package eventbus

import (
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

// EventBus is an in-process publish/subscribe bus. Handlers are functions of
// one argument; Publish invokes every handler whose parameter type matches
// the published event.
type EventBus interface {
	Publish(event any)
	Subscribe(handler any)
	SubscribersCount() int
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

type publisherImpl struct {
	log         *logrus.Logger
	mu          sync.RWMutex
	subscribers []reflect.Value
}

func (p *publisherImpl) Subscribe(handler any) {
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func || t.NumIn() != 1 {
		p.log.Errorf("eventbus: invalid handler signature %T", handler)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, reflect.ValueOf(handler))
}

func (p *publisherImpl) Publish(event any) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	eventType := reflect.TypeOf(event)
	matched := false
	for _, sub := range p.subscribers {
		paramType := sub.Type().In(0)
		if eventType == paramType ||
			(paramType.Kind() == reflect.Interface && eventType.Implements(paramType)) {
			sub.Call([]reflect.Value{reflect.ValueOf(event)})
			matched = true
		}
	}
	if !matched {
		p.log.Debugf("eventbus: no subscribers for %T", event)
	}
}

func (p *publisherImpl) SubscribersCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscribers)
}
