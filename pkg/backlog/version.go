package backlog

const Version = "0.1.0"
