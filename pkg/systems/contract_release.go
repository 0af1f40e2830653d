//go:build release

package systems

import "log"

// StrictContracts release 构建中调用约定被破坏时只记录日志
const StrictContracts = false

// ContractViolation 报告调用约定被破坏，release 构建中为空操作
func ContractViolation(format string, args ...any) {
	log.Printf("[Contract] violation: "+format, args...)
}
