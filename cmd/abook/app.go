package main

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/and161185/abook/internal/config"
	"github.com/and161185/abook/internal/model"
	"github.com/and161185/abook/internal/repository/csvrepo"
	"github.com/and161185/abook/internal/service"
)

// app wires configuration, stores, services, and the restored session.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	accounts service.AccountService
	entries  service.EntryService
	session  *service.Session
	signKey  []byte
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	accountRepo := csvrepo.NewAccounts(filepath.Join(cfg.DataDir, config.UsersFile))
	activeRepo := csvrepo.NewEntries(filepath.Join(cfg.DataDir, config.AddressFile))
	recycleRepo := csvrepo.NewEntries(filepath.Join(cfg.DataDir, config.RecycleFile))

	key, err := loadOrCreateKey(cfg.KeyFile)
	if err != nil {
		return nil, err
	}

	sess := service.NewSession(accountRepo)
	a := &app{
		cfg:      cfg,
		logger:   logger,
		accounts: service.NewAccountService(accountRepo),
		entries:  service.NewEntryService(activeRepo, recycleRepo, sess),
		session:  sess,
		signKey:  key,
	}
	a.restoreSession(ctx)
	return a, nil
}

// restoreSession replays a previously saved login token. Invalid or stale
// tokens are removed silently; commands then just see a logged-out session.
func (a *app) restoreSession(ctx context.Context) {
	tok, err := loadToken(a.cfg.TokenFile)
	if err != nil {
		return
	}
	username, err := service.ParseSessionToken(tok, a.signKey)
	if err != nil {
		_ = os.Remove(a.cfg.TokenFile)
		return
	}
	a.session.LogIn(model.Account{Username: username})
	if _, err := a.session.Current(ctx); err != nil {
		a.session.LogOut()
		_ = os.Remove(a.cfg.TokenFile)
	}
}

// saveLogin persists the current login across CLI invocations.
func (a *app) saveLogin(username string) error {
	tok, exp, err := service.IssueSessionToken(username, a.signKey, a.cfg.SessionTTL)
	if err != nil {
		return err
	}
	return saveToken(a.cfg.TokenFile, tok, exp)
}

func (a *app) clearLogin() {
	a.session.LogOut()
	_ = os.Remove(a.cfg.TokenFile)
}
