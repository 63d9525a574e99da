// Package provider defines the capabilities the provisioning workflow needs
// from a cloud provider.
//
// The workflow depends on two narrow interfaces: IdentityProvider (roles,
// inline policies and caller identity) and Gateway (REST API listing). Each
// cloud implementation registers a Provider via Register() that connects
// both for a region and is looked up by name via Get().
package provider
