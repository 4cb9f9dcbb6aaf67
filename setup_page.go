package main

// setupPageHTML is sent for every page request while the bundle is missing.
// States: idle -> building (button disabled, spinner) -> reload after 5s on
// success, or back to idle with the error shown.
const setupPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Smart Habit Tracker - Setup</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            display: flex;
            flex-direction: column;
            align-items: center;
            justify-content: center;
            height: 100vh;
            margin: 0;
            background-color: #f5f5f5;
        }

        .container {
            text-align: center;
            padding: 2rem;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0,0,0,0.1);
            background-color: white;
            max-width: 600px;
        }

        h1 {
            color: #1976d2;
        }

        button {
            background-color: #1976d2;
            color: white;
            border: none;
            padding: 10px 20px;
            border-radius: 4px;
            cursor: pointer;
            font-size: 16px;
            margin-top: 20px;
        }

        button:hover {
            background-color: #1565c0;
        }

        button:disabled {
            background-color: #90a4ae;
            cursor: not-allowed;
        }

        .spinner {
            border: 4px solid rgba(0, 0, 0, 0.1);
            border-radius: 50%;
            border-top: 4px solid #1976d2;
            width: 30px;
            height: 30px;
            animation: spin 1s linear infinite;
            margin: 20px auto;
            display: none;
        }

        @keyframes spin {
            0% { transform: rotate(0deg); }
            100% { transform: rotate(360deg); }
        }

        #output {
            margin-top: 20px;
            padding: 10px;
            background-color: #f0f0f0;
            border-radius: 4px;
            text-align: left;
            max-height: 200px;
            overflow-y: auto;
            white-space: pre-wrap;
            display: none;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Smart Habit Tracker</h1>
        <p>The Flutter web application needs to be built before it can be used.</p>
        <p>Click the button below to build the application:</p>

        <button id="buildButton" onclick="buildApp()">Build Application</button>

        <div id="spinner" class="spinner"></div>

        <div id="output"></div>
    </div>

    <script>
        function buildApp() {
            const button = document.getElementById('buildButton');
            const spinner = document.getElementById('spinner');
            const output = document.getElementById('output');

            button.disabled = true;
            spinner.style.display = 'block';
            output.style.display = 'block';
            output.textContent = 'Building application...\n';

            fetch('/api/build', {
                method: 'POST',
                headers: {
                    'Content-Type': 'application/json'
                }
            })
            .then(response => response.json())
            .then(data => {
                spinner.style.display = 'none';

                if (data.success) {
                    output.textContent += 'Build completed successfully!\n';
                    output.textContent += data.output || '';
                    output.textContent += '\nReloading page in 5 seconds...';

                    setTimeout(() => {
                        window.location.reload();
                    }, 5000);
                } else {
                    button.disabled = false;
                    output.textContent += 'Build failed: ' + data.message + '\n';
                    if (data.error) {
                        output.textContent += data.error + '\n';
                    }
                    if (data.details) {
                        output.textContent += data.details;
                    }
                }
            })
            .catch(error => {
                button.disabled = false;
                spinner.style.display = 'none';
                output.textContent += 'Error: ' + error.message;
            });
        }
    </script>
</body>
</html>`
