// Package authz provides hateoas.Authorizer implementations: plain functions,
// static role rules, grants stored in MongoDB, and a retrying wrapper for
// authorizers backed by remote services.
package authz
