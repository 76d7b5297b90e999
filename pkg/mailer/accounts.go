package mailer

import (
	"fmt"
	"sync"
)

// Accounts maps mail account IDs to their configured senders. The back
// office lets each message pick the account it goes out through; the
// embedding application registers one Sender per account at startup.
type Accounts struct {
	mu      sync.RWMutex
	senders map[string]Sender
}

// NewAccounts creates an empty account registry.
func NewAccounts() *Accounts {
	return &Accounts{senders: make(map[string]Sender)}
}

// Register binds a sender to an account ID, replacing any previous binding.
func (a *Accounts) Register(accountID string, s Sender) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.senders[accountID] = s
}

// SenderFor returns the sender bound to accountID.
func (a *Accounts) SenderFor(accountID string) (Sender, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.senders[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
	}
	return s, nil
}
