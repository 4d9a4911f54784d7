// Package toggle 把点赞/订阅的开关语义建模成显式的两状态机
//
// 每个(目标, 行为者)键上只有Absent和Present两个状态 每次toggle都翻转一次
// 结果上幂等(总是落在调用前的相反状态) 但对网络重试不幂等:
// 同一次toggle被重发两次会把状态翻回去 这是开关语义的既定性质 不是缺陷
package toggle

// State (目标, 行为者)关系行的存在状态
type State bool

const (
	Absent  State = false
	Present State = true
)

// Op toggle需要执行的存储动作
type Op int

const (
	// Attach 创建关系行
	Attach Op = iota
	// Detach 删除关系行
	Detach
)

// Next 给定当前状态 返回要执行的动作和翻转后的状态
func Next(current State) (Op, State) {
	if current == Present {
		return Detach, Absent
	}
	return Attach, Present
}
