//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/archery.yaml 是 data/archery.yaml 的副本，修改配置后需要同步：
//
//	cp data/archery.yaml mobile/data/
package mobile

import "embed"

//go:embed data/archery.yaml
var dataFS embed.FS
