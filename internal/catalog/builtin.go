package catalog

import "github.com/verte-zerg/fastcode/internal/model"

var builtin = []model.CodeSnippet{
	{
		ID:          "js-recursion",
		Language:    "JavaScript",
		Title:       "Recursive Fibonacci",
		Description: "Classic recursion warm-up.",
		Code: `function fibonacci(n) {
  if (n <= 1) return n
  return fibonacci(n - 1) + fibonacci(n - 2)
}

for (let i = 0; i < 10; i += 1) {
  console.log(fibonacci(i))
}`,
	},
	{
		ID:          "js-arrow-function",
		Language:    "JavaScript",
		Title:       "Arrow function",
		Description: "A short, modern way to write functions in JavaScript.",
		Code: `// Foydalanuvchilar ro'yxati
const users = [
  { name: "Ali", age: 17 },
  { name: "Vali", age: 20 },
  { name: "Hasan", age: 15 },
  { name: "Husan", age: 22 }
];

// 18 yoshdan katta foydalanuvchilarni filter qilamiz
const kattalar = users.filter(user => user.age >= 18);

// Har birining malumotini stringga o'zgartiramiz
const natija = kattalar.map(user => user.name + "(" + user.age + " yosh)");

// Ekranga chiqaramiz
natija.forEach(item => console.log(item));`,
	},
	{
		ID:          "py-context",
		Language:    "Python",
		Title:       "Context Timer",
		Description: "Measure execution time with ease.",
		Code: `from contextlib import contextmanager
from time import perf_counter


@contextmanager
def timer(label: str):
    start = perf_counter()
    yield
    elapsed = perf_counter() - start
    print(f"{label} took {elapsed:.3f}s")


with timer("fetch data"):
    fetch_remote_data()`,
	},
	{
		ID:          "html-card",
		Language:    "HTML",
		Title:       "Glass Card",
		Description: "Frosted glass UI shell.",
		Code: `<section class="glass-card">
  <header>
    <h2>Fast Code Typing</h2>
    <p>Sharpen your skills</p>
  </header>
  <button class="cta">Start Now</button>
</section>`,
	},
	{
		ID:          "react-hook",
		Language:    "React",
		Title:       "useToggle Hook",
		Description: "Reusable toggle logic.",
		Code: `import { useCallback, useState } from 'react'

export const useToggle = (initial = false) => {
  const [value, setValue] = useState(initial)
  const toggle = useCallback(() => setValue(prev => !prev), [])
  return [value, toggle] as const
}`,
	},
	{
		ID:          "css-keyframes",
		Language:    "CSS",
		Title:       "Pulse Keyframes",
		Description: "Subtle animation utility.",
		Code: `:root {
  color-scheme: dark;
}

@keyframes pulse {
  0% {
    transform: scale(0.98);
  }
  50% {
    transform: scale(1.02);
  }
  100% {
    transform: scale(0.98);
  }
}`,
	},
}

var languageIcons = map[string]string{
	"JavaScript": "🟨",
	"Python":     "🐍",
	"HTML":       "🌐",
	"React":      "⚛️",
	"CSS":        "🎨",
}
