//go:build !release

package systems

import "fmt"

// StrictContracts 开发构建中调用约定被破坏时立即 panic
const StrictContracts = true

// ContractViolation 报告调用约定被破坏（如零弹药时发射、更新已失效的箭矢）
//
// 开发构建直接 panic；使用 -tags release 构建时只记录日志，调用方按空操作处理。
func ContractViolation(format string, args ...any) {
	panic(fmt.Sprintf("contract violation: "+format, args...))
}
