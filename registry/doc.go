// Package registry stores layouts under names so tools can refer to a
// layout without shipping its schema file.
//
// Layouts are kept in their JSON schema form. MemoryStore holds them in
// process; RedisStore keeps them in Redis under "<prefix>:<name>" keys.
// Both validate layouts on Put and hand out independent copies on Get.
package registry
