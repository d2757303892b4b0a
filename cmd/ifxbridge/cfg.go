package main

// Config 连接层的东西都是外部协作方的，这里只要知道
// 往 database/sql 里注册过的驱动名和 DSN
type Config struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Log    Log    `yaml:"log"`
}

type Log struct {
	Level string `yaml:"level"`
}
