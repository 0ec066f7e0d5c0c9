/*

The fail package provides the one error type every conversion failure
normalizes into before leaving the convert package, plus its rendering
as an RFC 7807 problem detail.

Adapters with their own failure types funnel through Normalize: a
*Failure passes untouched, an error carrying its own status code keeps
it, and anything else becomes a 500.

*/
package fail
