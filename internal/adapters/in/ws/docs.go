// Package ws hosts the real-time broadcast channel. A Hub keeps topic-keyed
// session registries and fans persisted events out to subscribed browsers,
// mirroring the payload shapes of the REST layer.
package ws
