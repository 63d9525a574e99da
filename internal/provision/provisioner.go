// Package provision ensures the execute-api role exists.
//
// EnsureRole is idempotent. When the role already exists it returns after a
// single read and never compares or updates the existing policies. When the
// role is missing it resolves the caller account and the REST API id, builds
// the trust and invoke documents, then creates the role and attaches the
// inline policy, in that order.
//
// Every remote failure other than "role not found" on the existence check
// aborts the run and is returned unchanged. Nothing is retried and a role
// created before a failed policy attachment is left in place.
package provision

import (
	"context"

	"github.com/majorcontext/execrole/internal/log"
	"github.com/majorcontext/execrole/internal/policy"
	"github.com/majorcontext/execrole/internal/provider"
	"github.com/majorcontext/execrole/internal/ui"
)

// Defaults applied by New.
const (
	DefaultRegion     = "us-east-1"
	DefaultPolicyName = "ExecuteApiIAMPolicy"
	DefaultRolePath   = "/"
)

// Options configures a Provisioner.
type Options struct {
	// Region of the REST API, used in the execute-api ARN.
	Region string
	// APIName is the exact name of the REST API the role may invoke.
	APIName string
	// AllowedAccounts are operator-supplied principals placed ahead of the
	// caller's own account in the trust policy.
	AllowedAccounts []string
	// PolicyName names the inline policy.
	PolicyName string
	// RolePath is the IAM path of the created role.
	RolePath    string
	Description string
	Tags        map[string]string
	// DryRun stops after the documents are built; no mutation is made.
	DryRun bool
}

// Result describes the outcome of EnsureRole.
type Result struct {
	RoleName string
	RoleARN  string
	// Created is true only when this run created the role.
	Created bool
	DryRun  bool
	// Stage is StageDone or StageFailed.
	Stage Stage
	// FailedAt is the stage that failed when Stage is StageFailed.
	FailedAt Stage

	AccountID string
	RestAPIID string
	Trust     *policy.Document
	Invoke    *policy.Document
}

// Provisioner drives the role workflow against a provider.
type Provisioner struct {
	opts     Options
	identity provider.IdentityProvider
	gateway  provider.Gateway
}

// New creates a Provisioner. Empty Region, PolicyName and RolePath are
// replaced with their defaults. AllowedAccounts is copied.
func New(opts Options, identity provider.IdentityProvider, gateway provider.Gateway) *Provisioner {
	if opts.Region == "" {
		opts.Region = DefaultRegion
	}
	if opts.PolicyName == "" {
		opts.PolicyName = DefaultPolicyName
	}
	if opts.RolePath == "" {
		opts.RolePath = DefaultRolePath
	}
	opts.AllowedAccounts = append([]string(nil), opts.AllowedAccounts...)

	return &Provisioner{
		opts:     opts,
		identity: identity,
		gateway:  gateway,
	}
}

// Options returns the effective options after defaults.
func (p *Provisioner) Options() Options {
	return p.opts
}

// run tracks the state of one EnsureRole call.
type run struct {
	res   *Result
	stage Stage
}

func (r *run) enter(s Stage) {
	r.stage = s
	log.Debug("provisioning stage", "role", r.res.RoleName, "stage", s.String())
}

func (r *run) fail(err error) (*Result, error) {
	r.res.Stage = StageFailed
	r.res.FailedAt = r.stage
	log.Debug("provisioning failed", "role", r.res.RoleName, "stage", r.stage.String(), "error", err)
	return r.res, err
}

func (r *run) done() (*Result, error) {
	r.enter(StageDone)
	r.res.Stage = StageDone
	return r.res, nil
}

// EnsureRole makes sure roleName exists with the execute-api trust and
// invoke policies. The returned Result is non-nil even on error.
func (p *Provisioner) EnsureRole(ctx context.Context, roleName string) (*Result, error) {
	r := &run{res: &Result{RoleName: roleName, DryRun: p.opts.DryRun}}

	ui.Progressf("Ensuring execute-api role %s...", roleName)

	r.enter(StageCheckingExistence)
	log.Debug("calling identity provider", "operation", "GetRole", "role", roleName)
	role, err := p.identity.GetRole(ctx, roleName)
	if err == nil {
		if role != nil {
			r.res.RoleARN = role.ARN
		}
		ui.Progressf("Execute-api role %s already exists.", roleName)
		return r.done()
	}
	if !p.identity.IsNotFound(err) {
		return r.fail(err)
	}
	log.Debug("role not found, creating", "role", roleName)

	r.enter(StageResolvingIdentity)
	accountID, err := ResolveAccountID(ctx, p.identity)
	if err != nil {
		return r.fail(err)
	}
	r.res.AccountID = accountID

	r.enter(StageResolvingGateway)
	restAPIID, err := ResolveRestAPIID(ctx, p.gateway, p.opts.APIName)
	if err != nil {
		return r.fail(err)
	}
	r.res.RestAPIID = restAPIID

	r.res.Trust = policy.TrustPolicy(accountID, p.opts.AllowedAccounts)
	r.res.Invoke = policy.InvokePolicy(p.opts.Region, accountID, restAPIID)

	trustJSON, err := r.res.Trust.JSON()
	if err != nil {
		return r.fail(err)
	}
	invokeJSON, err := r.res.Invoke.JSON()
	if err != nil {
		return r.fail(err)
	}

	if p.opts.DryRun {
		ui.Progressf("Dry run: execute-api role %s would be created for REST API %s.", roleName, restAPIID)
		return r.done()
	}

	r.enter(StageCreating)
	log.Debug("calling identity provider", "operation", "CreateRole", "role", roleName)
	created, err := p.identity.CreateRole(ctx, provider.CreateRoleParams{
		RoleName:                 roleName,
		Path:                     p.opts.RolePath,
		AssumeRolePolicyDocument: trustJSON,
		Description:              p.opts.Description,
		Tags:                     p.opts.Tags,
	})
	if err != nil {
		return r.fail(err)
	}
	r.res.Created = true
	if created != nil {
		r.res.RoleARN = created.ARN
	}

	r.enter(StageAttachingPolicy)
	log.Debug("calling identity provider", "operation", "PutInlinePolicy", "role", roleName, "policy", p.opts.PolicyName)
	err = p.identity.PutInlinePolicy(ctx, provider.PutPolicyParams{
		RoleName:       roleName,
		PolicyName:     p.opts.PolicyName,
		PolicyDocument: invokeJSON,
	})
	if err != nil {
		return r.fail(err)
	}

	ui.Progressf("Execute-api role %s created.", roleName)
	return r.done()
}
