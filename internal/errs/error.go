package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedTemplate = errors.New("无法从 insert 模板中解析出表名和列")
var ErrUnevenBatch = errors.New("参数个数不是占位符个数的整数倍")
var ErrUniqueConstraint = errors.New("唯一约束冲突")
var ErrDropExhausted = errors.New("删表重试次数已耗尽")

func NewErrDropExhausted(tables []string) error {
	return fmt.Errorf("%w，剩余表: %s", ErrDropExhausted, strings.Join(tables, ", "))
}

// Informix 约束类错误码。驱动只在错误文本里带出数字码，
// 这里按文本匹配识别。
// -239 重复主键，-268 唯一约束，-691 引用约束
var constraintCodes = []string{"-239", "-268", "-691"}

// ClassifyExec 把执行原语返回的约束冲突重新打上 ErrUniqueConstraint 标记，
// 其余错误原样透传。
func ClassifyExec(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, code := range constraintCodes {
		if strings.Contains(msg, code) {
			return fmt.Errorf("%w: %s", ErrUniqueConstraint, msg)
		}
	}
	return err
}
